package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the folio command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Folio portfolio server",
		Long: `Folio serves an animated portfolio site with a home page and a contact page.

Available commands:
  serve            Start the HTTP server
  content check    Validate a site content file
  version          Print the version

Use "folio [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newContentCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
