package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/siliconcp/go-deckgen"
)

// Commit and BuildTime are injected at build time via
// -ldflags "-X main.Commit=... -X main.BuildTime=...".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, OutputFormatText, "output format (text or json)")

	return cmd
}

func runVersion(format string, stdout io.Writer) error {
	out := versionOutput{
		Version:   deckgen.Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}

	switch format {
	case OutputFormatJSON:
		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(jsonBytes))
	case OutputFormatText:
		fmt.Fprintf(stdout, "deckgen %s\n  commit:     %s\n  build time: %s\n  go version: %s\n",
			out.Version, out.Commit, out.BuildTime, out.GoVersion)
	default:
		return errors.New(ErrMsgInvalidFormat)
	}

	return nil
}
