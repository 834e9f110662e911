package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nlstn/go-rexp"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	cfg        *config
	translator *rexp.Translator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rexpr",
		Short: "Translate R model expressions",
		Long: `rexpr translates the expressions found in fitted R models into a typed
expression tree and prints it as text, YAML or JSON.

It understands derived field expressions, interval literals produced by cut(),
and interaction terms from model formulas.

Settings are read from an optional YAML file (--config), then from REXPR_*
environment variables, then from flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := loadConfig(a.configFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			a.translator = rexp.NewTranslator(
				rexp.WithLogger(logger),
				rexp.WithCacheSize(cfg.CacheSize),
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.bindFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{formatText, formatYAML, formatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newExprCmd(a))
	rootCmd.AddCommand(newIntervalCmd(a))
	rootCmd.AddCommand(newSplitCmd(a))
	rootCmd.AddCommand(newTypeCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))

	return rootCmd
}

// bindFlags registers the global flags on fs. Their values reach the
// subcommands through loadConfig.
func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.configFile, "config", "", "YAML config file")
	fs.StringP("output", "o", formatText, "Output format (text|yaml|json)")
	fs.BoolP("verbose", "v", false, "Log each translation to stderr")
	fs.Int("cache-size", rexp.DefaultCacheSize, "Number of translations to cache (0 disables)")
}
