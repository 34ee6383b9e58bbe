package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siliconcp/go-deckgen"
)

type validateOptions struct {
	templatePath string
	catalogPath  string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a template against the placeholder catalog",
		Long: "Validate parses the template, lists each slide with its gating tags\n" +
			"and placeholder tokens, and flags tokens the catalog does not know\n" +
			"as well as catalog placeholders the template never uses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.templatePath, FlagTemplate, FlagTemplateShort, "", "path to the PPTX template")
	cmd.Flags().StringVarP(&opts.catalogPath, FlagCatalog, FlagCatalogShort, "", "path to a placeholder catalog YAML")

	return cmd
}

// runValidate is the validate command body, separated for testing.
// Unknown or unused tokens are reported but do not fail the command;
// only structural problems do.
func runValidate(opts *validateOptions, stdout io.Writer) error {
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

	catalog := deckgen.DefaultCatalog()
	if opts.catalogPath != "" {
		catalog, err = deckgen.LoadCatalogFile(opts.catalogPath)
		if err != nil {
			return err
		}
	}

	engine, err := deckgen.New(deckgen.WithCatalog(catalog))
	if err != nil {
		return err
	}
	tmpl, err := engine.Load(opts.templatePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d slides\n", tmpl.Name(), tmpl.SlideCount())

	seen := make(map[string]bool)
	for _, slide := range tmpl.Slides() {
		line := fmt.Sprintf("  slide %d (%s)", slide.Index, slide.PartName)
		if len(slide.Tags) > 0 {
			line += " tags=" + strings.Join(slide.Tags, ",")
		}
		if len(slide.Tokens) > 0 {
			line += " tokens=" + strings.Join(slide.Tokens, ",")
		}
		fmt.Fprintln(stdout, line)
		for _, token := range slide.Tokens {
			seen[token] = true
		}
	}

	var unknown []string
	for token := range seen {
		if _, ok := catalog.Get(tokenName(token)); !ok {
			unknown = append(unknown, token)
		}
	}
	sort.Strings(unknown)
	for _, token := range unknown {
		fmt.Fprintf(stdout, "unknown token %s: not in the catalog, will render as-is\n", token)
	}

	var unused []string
	for _, p := range catalog.Placeholders {
		if !seen[p.Token()] {
			unused = append(unused, p.Name)
		}
	}
	sort.Strings(unused)
	for _, name := range unused {
		fmt.Fprintf(stdout, "unused placeholder %s: catalog entry never appears in the template\n", name)
	}

	return nil
}

// tokenName strips the brace delimiters from a placeholder token.
func tokenName(token string) string {
	return strings.TrimSuffix(strings.TrimPrefix(token, deckgen.TokenOpen), deckgen.TokenClose)
}
