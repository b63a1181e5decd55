package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psacc/buflist/internal/action"
	"github.com/psacc/buflist/internal/output"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions buffers support",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.RenderNames(cmd.OutOrStdout(), action.Names(), getFormat())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
