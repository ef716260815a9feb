package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/pdfbatch/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdfbatch",
	Short: "Extract text from PDFs and batch rename them by content",
	Long: `pdfbatch reads text from the first pages of PDF files and renames
them in batch using regex capture groups rendered into a filename template.

Renaming is dry-run by default: the full plan is printed and nothing is
touched until --apply is given.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pdfbatch %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
