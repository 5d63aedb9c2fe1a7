// Command judgmentctl runs the judgment tools from a terminal and inspects the
// site configuration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncecere/judgment-tools/internal/config"
)

type rootOptions struct {
	configFile string
	envFile    string
	jsonOutput bool
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Options{ConfigFile: o.configFile, EnvFile: o.envFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "judgmentctl",
		Short:         "Deterministic decision helpers and site inspection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to site.yaml (default: ./site.yaml or $JUDGMENT_CONFIG_FILE)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default: ./.env)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")

	root.AddCommand(newDecideCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newToolsCmd(opts))
	root.AddCommand(newRoutesCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
