package cli

import (
	"context"
	"os/signal"
	"syscall"

	"cyberedu_admin/internal/app"
	"cyberedu_admin/internal/config"
	"cyberedu_admin/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewServeCmd 启动 HTTP 网关
func NewServeCmd(configDir *string) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configDir, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides config)")
	return cmd
}

func runServer(ctx context.Context, configDir, port string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if port != "" {
		cfg.Server.Port = port
	}

	application, err := app.NewApp(cfg, configDir)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
