package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

var (
	ErrNoTableFile = errors.New("no route table provided")
	ErrUnresolved  = errors.New("one or more links did not resolve")
)

// Flag names shared by subcommands.
const (
	FlagTable    = "table"
	FlagLogLevel = "log-level"
	FlagLang     = "lang"
	FlagMessages = "messages"
	FlagJSON     = "json"
)

// nolint: gochecknoglobals
var (
	Version = "master"

	// RootCmd represents the base command when called without any subcommands.
	RootCmd = &cobra.Command{
		Use:     "waypoint",
		Short:   "Resolves deep links into navigation destinations",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if level, _ := cmd.Flags().GetString(FlagLogLevel); len(level) != 0 {
				waypoint.SetRawLogLevel(level)
			}
		},
	}
)

// nolint: gochecknoinits
func init() {
	RootCmd.PersistentFlags().String(FlagLogLevel, "", "Log level (debug, info, warn, error)")

	RootCmd.AddCommand(NewResolveCommand())
	RootCmd.AddCommand(NewValidateCommand())
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer waypoint.CloseLogger()

	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErr(err)
		os.Exit(-1)
	}
}
