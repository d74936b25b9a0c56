package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/adsclient/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("adsclient version %s (library %s)\n", version, domain.LibraryVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
