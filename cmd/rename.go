package cmd

import (
	"github.com/itsmostafa/pdfbatch/internal/rename"
	"github.com/spf13/cobra"
)

var renameFolder string
var renamePattern string
var renameTemplate string
var renamePages int
var renameApply bool

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Batch rename PDFs using text patterns",
	Long: `Rename scans every PDF in a folder, matches a regex against the text of
its first pages, and renders the capture groups into a new filename.
Without --apply the full plan is printed and nothing is renamed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rename.Run(rename.Config{
			Folder:   renameFolder,
			Pattern:  renamePattern,
			Template: renameTemplate,
			Pages:    renamePages,
			Apply:    renameApply,
			Output:   cmd.OutOrStdout(),
		})
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameFolder, "folder", "", "Folder containing PDFs")
	renameCmd.Flags().StringVar(&renamePattern, "pattern", "", `Regex pattern (e.g., 'Invoice #(\d+)' or 'ID: (?P<id>\w+)')`)
	renameCmd.Flags().StringVar(&renameTemplate, "template", "", "New filename template (e.g., 'INVOICE_{1}.pdf' or 'DOC_{id}.pdf')")
	renameCmd.Flags().IntVar(&renamePages, "pages", 1, "Pages to scan per PDF")
	renameCmd.Flags().BoolVar(&renameApply, "apply", false, "Apply changes (without this flag, runs in dry-run mode)")
	_ = renameCmd.MarkFlagRequired("folder")
	_ = renameCmd.MarkFlagRequired("pattern")
	_ = renameCmd.MarkFlagRequired("template")
	rootCmd.AddCommand(renameCmd)
}
