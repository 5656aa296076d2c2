package main

import (
	"encoding/json"
	"io"

	"github.com/cyphera/cyphera-fees/internal/constants"
	"github.com/cyphera/cyphera-fees/internal/helpers"
	"github.com/cyphera/cyphera-fees/internal/logger"
	"github.com/cyphera/cyphera-fees/internal/schedule"
	"github.com/cyphera/cyphera-fees/internal/services"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	ScheduleKey = "schedule"
	LogLevelKey = "log-level"
)

func rootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           "feectl",
		Short:         "Estimates account-based chain fees from a fee schedule file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			level, err := c.Flags().GetString(LogLevelKey)
			if err != nil {
				return err
			}
			logger.InitLoggerWithConfig(logger.LoggerConfig{
				Level: level,
				Stage: helpers.StageLocal,
			})
			return nil
		},
	}
	addRootFlags(c.PersistentFlags())
	c.AddCommand(estimateCommand(), networksCommand())
	return c
}

func addRootFlags(flags *pflag.FlagSet) {
	flags.String(ScheduleKey, constants.DefaultFeeSchedulePath, "Fee schedule file")
	flags.String(LogLevelKey, "warn", "Log level written to stderr")
}

// loadService builds a fee service over the schedule file named by the flags
func loadService(flags *pflag.FlagSet) (*services.FeeService, error) {
	path, err := flags.GetString(ScheduleKey)
	if err != nil {
		return nil, err
	}
	store, err := schedule.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return services.NewFeeService(store), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
