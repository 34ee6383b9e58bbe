package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional and never overrides the real environment.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Proposal deck generation from PPTX templates",
		Long: "Deckgen fills placeholder tokens in a PPTX template, drops slides\n" +
			"whose gating tags are disabled, and emits a finished proposal deck.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
