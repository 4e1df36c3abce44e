package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvkit/internal/config"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "0.0.0"

const configFlag = "config"

// NewRootCommand builds the lvkit command tree with its own viper instance,
// so independent trees never share configuration state.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:   "lvkit",
		Short: "Bounded ring buffer and exact 0/1 knapsack tools",
		Long: `lvkit exposes two small utilities from the command line:

  knapsack  solve a 0/1 knapsack instance read from an "index size value" file
  tail      keep the last N lines of a stream in a ring buffer

Settings resolve from flags, then LVKIT_* environment variables, then the
YAML file given with --config.
`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringP(configFlag, "c", "", "YAML config file")
	pf.StringP(config.KeyOutput, "o", "table", "output format (table, yaml, json)")
	pf.Bool(config.KeyDebug, false, "enable debug logging")
	pf.BoolP(config.KeyQuiet, "q", false, "suppress log output on stderr")
	pf.String(config.KeyLogFormat, "text", "log format (text, json)")
	pf.String(config.KeyLogFile, "", "also append logs to this file")

	for _, key := range []string{config.KeyOutput, config.KeyDebug, config.KeyQuiet, config.KeyLogFormat, config.KeyLogFile} {
		if err := v.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
		}
	}

	root.AddCommand(knapsackCmd(v))
	root.AddCommand(tailCmd(v))
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the binary version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
