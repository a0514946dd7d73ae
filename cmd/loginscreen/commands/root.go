package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loginscreen/internal/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	loginDelay string
	debug      bool
)

func Execute() error {
	root := &cobra.Command{
		Use:          "loginscreen",
		Short:        "Login screen with a simulated login call",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if loginDelay != "" {
				if err := loaded.OverrideLoginDelay(loginDelay); err != nil {
					return err
				}
			}
			cfg = loaded
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&loginDelay, "delay", "", "simulated login delay, overrides LOGIN_DELAY (e.g. 500ms)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	root.AddCommand(botCmd(), consoleCmd())
	return root.Execute()
}

// newLogger builds the production logger, at debug level when asked to
func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
