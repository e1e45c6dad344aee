package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/folio/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Work with the site content file",
	}
	contentCmd.AddCommand(newContentCheckCmd(afero.NewOsFs()))
	return contentCmd
}

func newContentCheckCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a site content file",
		Long: `Load and validate a site content file without starting the server.

The path defaults to CONTENT_PATH. With neither set, the embedded default
content is checked.

Examples:
  folio content check                   # Check CONTENT_PATH or the default
  folio content check ./content.yaml    # Check a specific file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := os.Getenv("CONTENT_PATH")
			if len(args) == 1 {
				path = args[0]
			}

			c, err := content.Load(fs, path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ Content validation failed: %v\n", err)
				return err
			}

			source := path
			if source == "" {
				source = "embedded default"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid\n", source)
			fmt.Fprintf(cmd.OutOrStdout(), "   Profile:       %s\n", c.Profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "   Socials:       %d\n", len(c.Socials))
			fmt.Fprintf(cmd.OutOrStdout(), "   Stats:         %d\n", len(c.Stats))
			fmt.Fprintf(cmd.OutOrStdout(), "   Contact cards: %d\n", len(c.ContactCards))
			return nil
		},
	}
}
