package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/logging"
	"github.com/conneroisu/diary/internal/server"
	"github.com/conneroisu/diary/internal/theme"
)

var serveTheme = theme.ModeLight

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the diary server",
	Long: `Start the diary server.

With --data the diaries are read from a YAML fixture instead of the built-in
one. Adding --hot-reload watches that file and refreshes open browsers
whenever it changes.

Examples:
  diary serve
  diary serve --port 3000 --theme dark
  diary serve --data ./diaries.yml --hot-reload`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to serve on")
	serveCmd.Flags().String("host", config.DefaultHost, "Host to bind to")
	serveCmd.Flags().StringP("data", "d", "", "Diary fixture file (default is the built-in one)")
	serveCmd.Flags().Bool("hot-reload", false, "Reload the data file and refresh browsers on change")
	serveCmd.Flags().Int("page-size", config.DefaultPageSize, "Diaries per list page")
	serveCmd.Flags().Var(&serveTheme, "theme", "Default theme (light, dark)")

	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("data.path", serveCmd.Flags().Lookup("data"))
	_ = viper.BindPFlag("development.hot_reload", serveCmd.Flags().Lookup("hot-reload"))
	_ = viper.BindPFlag("ui.page_size", serveCmd.Flags().Lookup("page-size"))
	_ = viper.BindPFlag("ui.theme", serveCmd.Flags().Lookup("theme"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LoggerConfig())

	srv, err := server.New(cfg, logger)
	if err != nil {
		return errors.WrapInternal(err, errors.ErrCodeInternalError, "failed to create server")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving diaries at http://%s/diaries\n", cfg.Addr())

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info(context.Background(), "Server stopped")
	return nil
}
