package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psds-microservice/medicine-catalog/internal/catalog"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Medicine Catalog\nVersion: %s\nCommit: %s\nBuild: %s\nReference list: v%d (%d medicines)\n",
			Version, Commit, BuildDate, catalog.Version(), len(catalog.Reference()))
		return nil
	},
}
