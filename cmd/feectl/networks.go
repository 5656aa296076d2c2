package main

import (
	"github.com/spf13/cobra"
)

func networksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "Lists the networks of the fee schedule file",
		Args:  cobra.NoArgs,
		RunE:  networksFunc,
	}
}

func networksFunc(c *cobra.Command, _ []string) error {
	service, err := loadService(c.Flags())
	if err != nil {
		return err
	}
	networks, err := service.ListNetworks(c.Context())
	if err != nil {
		return err
	}
	return writeJSON(c.OutOrStdout(), networks)
}
