package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loginscreen/internal/console"
	"loginscreen/internal/service"
)

func consoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the login screen in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Keep the terminal for the screen; only warnings reach stderr
			l, err := newLogger(zap.NewAtomicLevelAt(zap.WarnLevel))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			vm := service.NewLoginViewModel(service.LoginOptions{
				Delay: cfg.LoginDelay,
			}, logger)
			defer vm.Close()

			screen := console.NewScreen(vm, cmd.OutOrStdout(), logger)
			return screen.Run(ctx, cmd.InOrStdin())
		},
	}
}
