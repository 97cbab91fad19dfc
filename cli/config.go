package cli

import (
	"github.com/spf13/cobra"

	"github.com/pthm-cable/codedrift/config"
)

func newConfigCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Cfg()
			if root.theme != "" {
				cfg.Theme.Initial = root.theme
			}
			data, err := cfg.MarshalYAMLBytes()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
