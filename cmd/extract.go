package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/pdfbatch/internal/pdftext"
	"github.com/spf13/cobra"
)

var extractPDF string
var extractPages int

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from the first pages of a PDF",
	Long:  `Extract prints the plain text of the first N pages of a PDF file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if extractPages < 1 {
			return fmt.Errorf("pages must be at least 1, got %d", extractPages)
		}

		pages, err := pdftext.ExtractPages(extractPDF, extractPages)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		text := strings.TrimSpace(strings.Join(pages, "\n"+strings.Repeat("-", 60)+"\n"))
		if text == "" {
			fmt.Fprintln(out, "No text extracted")
		} else {
			rule := strings.Repeat("=", 60)
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out, text)
			fmt.Fprintln(out, rule)
		}
		fmt.Fprintf(out, "processed %d page(s)\n", len(pages))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractPDF, "pdf", "", "PDF file path")
	extractCmd.Flags().IntVar(&extractPages, "pages", 1, "Number of pages to extract")
	_ = extractCmd.MarkFlagRequired("pdf")
	rootCmd.AddCommand(extractCmd)
}
