package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd — версия и дата сборки, переданные через -ldflags.
//
//	fleetctl version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s\nbuild_date=%s\n", buildVersion, buildDate)
		},
	}
}
