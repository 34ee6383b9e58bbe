package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/siliconcp/go-deckgen"
)

type renderOptions struct {
	templatePath string
	requestPath  string
	outPath      string
	catalogPath  string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a deck from a JSON request file",
		Long: "Render reads a JSON render request, fills the template, and writes\n" +
			"the finished deck. With --out - the document goes to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.templatePath, FlagTemplate, FlagTemplateShort, "", "path to the PPTX template")
	cmd.Flags().StringVarP(&opts.requestPath, FlagRequest, FlagRequestShort, "", "path to the JSON request file, - for stdin")
	cmd.Flags().StringVarP(&opts.outPath, FlagOut, FlagOutShort, "", "output path, - for stdout (default: derived filename)")
	cmd.Flags().StringVarP(&opts.catalogPath, FlagCatalog, FlagCatalogShort, "", "path to a placeholder catalog YAML")

	return cmd
}

// runRender is the render command body, separated for testing. Config
// fills in anything the flags leave empty.
func runRender(opts *renderOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.templatePath == "" {
		opts.templatePath = cfg.Template.Path
	}
	if opts.templatePath == "" {
		return errors.New(ErrMsgTemplateRequired)
	}
	if opts.catalogPath == "" {
		opts.catalogPath = cfg.Catalog.Path
	}
	if opts.requestPath == "" {
		return errors.New(ErrMsgRequestRequired)
	}

	payload, err := readRequestPayload(opts.requestPath, stdin)
	if err != nil {
		return err
	}
	req, err := deckgen.ParseRequest(payload)
	if err != nil {
		return err
	}

	engineOpts := []deckgen.Option{deckgen.WithFilenamePrefix(cfg.Output.FilenamePrefix)}
	if opts.catalogPath != "" {
		catalog, err := deckgen.LoadCatalogFile(opts.catalogPath)
		if err != nil {
			return err
		}
		engineOpts = append(engineOpts, deckgen.WithCatalog(catalog))
	}

	engine, err := deckgen.New(engineOpts...)
	if err != nil {
		return err
	}
	tmpl, err := engine.Load(opts.templatePath)
	if err != nil {
		return err
	}

	result, err := engine.Render(context.Background(), tmpl, req)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(stderr, "warning: "+warning.Message())
	}

	if opts.outPath == StdStream {
		_, err = stdout.Write(result.Document)
		return err
	}

	outPath := opts.outPath
	if outPath == "" {
		outPath = result.Filename
	}
	if err := atomic.WriteFile(outPath, bytes.NewReader(result.Document)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOutput, err)
	}

	fmt.Fprintf(stderr, "wrote %s (%d slides)\n", outPath, result.SlideCount)
	return nil
}

func readRequestPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == StdStream {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgReadStdin, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadRequest, err)
	}
	return data, nil
}
