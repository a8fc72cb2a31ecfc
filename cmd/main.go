package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lrucache/internal/config"
	"lrucache/internal/db"
	"lrucache/internal/server"
	"lrucache/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type serveOptions struct {
	configDir string
	addr      string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lrucache",
		Short:         "In-memory LRU cache server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.configDir, "config", ".", "directory containing "+config.FileName)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides log.level)")
	return cmd
}

func serve(ctx context.Context, opts *serveOptions) error {
	conf, err := config.NewConfig(opts.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.addr != "" {
		conf.Server.Addr = opts.addr
	}
	if opts.logLevel != "" {
		conf.Log.Level = opts.logLevel
	}

	if err := logger.InitLogger(conf.Log.Level, conf.Log.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	if conf.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.New(conf)
	if err != nil {
		return err
	}
	if err := database.Open(); err != nil {
		return err
	}
	defer database.Close()

	srv := server.New(database)
	srv.ShutdownTimeout = conf.Server.ShutdownTimeout

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx, conf.Server.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		for _, info := range database.ListCaches() {
			logger.Info("Cache summary", "cache", info.Name, "size", info.Size,
				"hits", info.Stats.Hits, "misses", info.Stats.Misses, "evictions", info.Stats.Evictions)
		}
		return nil
	})
	return g.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
