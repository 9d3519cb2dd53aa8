package main

import (
	"shici/pkg/config"
	"shici/pkg/handlers"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reshaped poems over HTTP",
		Long: `Starts the poem API:

  GET  /api/poems          all reshaped poems
  GET  /api/poems/:index   one poem by position
  GET  /api/search?q=      title, author or content match
  GET  /api/random         one random poem
  GET  /api/sources        candidate input files in DATA_DIR
  POST /api/reshape        rerun the transform with the configured paths`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&config.ServerBind, "bind", config.ServerBind, "listen address")
	cmd.Flags().StringVar(&config.ServerPort, "port", config.ServerPort, "listen port")
	cmd.Flags().StringVar(&config.DataDir, "data-dir", config.DataDir, "directory scanned for source files")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.Logger = log
	r := handlers.NewRouter()

	log.Info("starting poem API",
		zap.String("addr", config.ServerAddr()),
		zap.String("poems", config.OutputPath))
	return r.Run(config.ServerAddr())
}
