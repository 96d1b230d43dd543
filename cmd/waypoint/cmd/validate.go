package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewValidateCommand represents the "validate" command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validates a route table",
		Example: "waypoint validate -t routes.toml",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := validateTable(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}

			cmd.Println("Route table is valid")
		},
	}

	cmd.Flags().StringP(FlagTable, "t", "", "Route table file (TOML)")

	return cmd
}

func validateTable(cmd *cobra.Command) error {
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	cmd.Printf("%d routes", table.Len())
	if scheme := table.Scheme(); len(scheme) != 0 {
		cmd.Printf(" for scheme %q", scheme)
	}
	cmd.Println()

	return nil
}
