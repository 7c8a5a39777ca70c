package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration snake would use, after the config file search
and command-line overrides, as YAML.

Config search order:
  --config <path>
  ~/.torus-snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config
  snake config --defaults
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
