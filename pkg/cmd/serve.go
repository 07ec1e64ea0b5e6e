package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yeisme/labvault/pkg/app"
	"github.com/yeisme/labvault/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "start the HTTP server",
	Aliases: []string{"server", "run"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(configPath)

		// 响应 SIGINT/SIGTERM 做收尾
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			log.Logger().Info().Msg("shutting down")

			if err := a.Shutdown(); err != nil {
				log.Logger().Warn().Err(err).Msg("shutdown error")
			}

			os.Exit(0)
		}()

		return a.Run()
	},
}

// registerServeCommands 注册服务启动命令.
func registerServeCommands() {
	rootCmd.AddCommand(serveCmd)
}
