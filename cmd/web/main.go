// Command moofar-web hosts the Moofar site build: the SPA entry document, its assets and the
// health check.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tmosimanyana/moofar.site/internal/config"
	"github.com/tmosimanyana/moofar.site/internal/observability"
	"github.com/tmosimanyana/moofar.site/internal/server"
	"github.com/tmosimanyana/moofar.site/internal/ui/router"
	"github.com/tmosimanyana/moofar.site/public"
)

const appName = "moofar-web"

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "serves the Moofar Landscape & Nursery site",
		HideHelpCommand: true,
		Writer:          stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "read local overrides from `FILE`", Sources: cli.EnvVars("MOOFAR_ENV_FILE")},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Runs the HTTP host until interrupted (default)",
				Action: serve,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen on `ADDR` instead of :$PORT"},
				},
			},
			{
				Name:   "routes",
				Usage:  "Prints the client route table",
				Action: printRoutes,
			},
			{
				Name:   "config",
				Usage:  "Prints the effective configuration (YAML)",
				Action: printConfig,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			os.Exit(1)
		}
	}()
	err = newApp(os.Stdout).Run(ctx, os.Args)
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(config.WithEnvFile(cmd.String("env-file")))
	if err != nil {
		return config.Config{}, fmt.Errorf("unable to load configuration: %w", err)
	}
	return cfg, nil
}

func siteFS(cfg config.SiteConfig) fs.FS {
	if cfg.PublicDir != "" {
		return os.DirFS(cfg.PublicDir)
	}
	return public.StaticFS()
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("unable to prepare logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(cfg.Server, logger, siteFS(cfg.Site))
	if err != nil {
		logger.Error("Unable to build server", zap.Error(err))
		return err
	}
	if addr := cmd.String("addr"); addr != "" {
		srv.Addr = addr
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		logger.Error("Unable to listen", zap.String("addr", srv.Addr), zap.Error(err))
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	logger.Info("Site listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("env", cfg.Site.Environment),
		zap.Bool("embedded", cfg.Site.PublicDir == ""),
	)
	if err := run(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger); err != nil {
		logger.Error("Site stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Site stopped")
	return nil
}

// run serves on ln until ctx is done, then shuts down within timeout. A shutdown that
// overruns falls back to closing every connection.
func run(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down", zap.Duration("timeout", timeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		var err error
		if er := srv.Shutdown(shutdownCtx); er != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown: %w", er))
			if er := srv.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("close: %w", er))
			}
		}
		return err
	})
	return g.Wait()
}

func printRoutes(_ context.Context, cmd *cli.Command) error {
	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tPAGE")
	for _, rt := range router.Default().Routes() {
		fmt.Fprintf(tw, "%s\t%s\n", rt.Path, rt.Name)
	}
	fmt.Fprintf(tw, "%s\t%s\n", "*", "notfound")
	return tw.Flush()
}

type configDump struct {
	Server struct {
		Port            string `yaml:"port"`
		ReadTimeout     string `yaml:"read_timeout"`
		WriteTimeout    string `yaml:"write_timeout"`
		IdleTimeout     string `yaml:"idle_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Site struct {
		PublicDir   string `yaml:"public_dir"`
		Environment string `yaml:"environment"`
	} `yaml:"site"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func printConfig(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var d configDump
	d.Server.Port = cfg.Server.Port
	d.Server.ReadTimeout = cfg.Server.ReadTimeout.String()
	d.Server.WriteTimeout = cfg.Server.WriteTimeout.String()
	d.Server.IdleTimeout = cfg.Server.IdleTimeout.String()
	d.Server.ShutdownTimeout = cfg.Server.ShutdownTimeout.String()
	d.Site.PublicDir = cfg.Site.PublicDir
	if d.Site.PublicDir == "" {
		d.Site.PublicDir = "(embedded)"
	}
	d.Site.Environment = cfg.Site.Environment
	d.Log.Level = cfg.Log.Level.String()

	enc := yaml.NewEncoder(cmd.Root().Writer)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return enc.Close()
}
