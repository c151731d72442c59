package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xiy/arrstack-mcp/internal/admin"
	"github.com/xiy/arrstack-mcp/internal/arr"
	"github.com/xiy/arrstack-mcp/internal/bootstrap"
	"github.com/xiy/arrstack-mcp/internal/config"
	"github.com/xiy/arrstack-mcp/internal/health"
	"github.com/xiy/arrstack-mcp/internal/mcp"
	"github.com/xiy/arrstack-mcp/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "bootstrap-clis":
		if err := runBootstrap(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "admin":
		if err := runAdmin(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "version", "--version", "-v":
		fmt.Println("arrstack-mcp v0.1.0")
	default:
		usage()
		os.Exit(2)
	}
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "config/arrstack-mcp.yaml", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsurePaths(); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportCaller: false, Prefix: cfg.ServerName})
	setLogLevel(logger, cfg.LogLevel)

	endpoints := cfg.Endpoints()
	if len(endpoints) == 0 {
		logger.Warn("no services configured; the server will expose no tools",
			"hint", "set SONARR_URL/SONARR_API_KEY etc. or add services to the config file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.OpenSQLite(ctx, cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	registry := arr.NewRegistry(endpoints, logger)

	if cfg.HealthCheckIntervalSeconds > 0 {
		go health.Start(ctx, logger, time.Duration(cfg.HealthCheckIntervalSeconds)*time.Second, registry, st)
	}

	server := mcp.New(cfg, registry, st, logger)
	logger.Info("starting MCP stdio server", "services", len(endpoints), "db", cfg.DBPath)
	return mcp.ServeStdio(server)
}

func runBootstrap(args []string) error {
	fs := flag.NewFlagSet("bootstrap-clis", flag.ContinueOnError)
	configPath := fs.String("config", "config/arrstack-mcp.yaml", "Path to config file")
	scope := fs.String("scope", "user", "Config scope: user or project")
	serverName := fs.String("server-name", "arrstack", "MCP server registration name")
	serveCmd := fs.String("serve-command", "arrstack-mcp serve", "Command used by MCP clients to launch the stdio server")
	all := fs.Bool("all", false, "Configure all available CLIs")
	codex := fs.Bool("codex", false, "Configure Codex CLI")
	claude := fs.Bool("claude", false, "Configure Claude CLI")
	gemini := fs.Bool("gemini", false, "Configure Gemini CLI")
	dryRun := fs.Bool("dry-run", false, "Print intended commands without executing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	return bootstrap.Bootstrap(logger, bootstrap.Options{
		ConfigPath: *configPath,
		Scope:      *scope,
		ServerName: *serverName,
		ServeCmd:   *serveCmd,
		All:        *all,
		Codex:      *codex,
		Claude:     *claude,
		Gemini:     *gemini,
		DryRun:     *dryRun,
	}, nil)
}

func runAdmin(args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	configPath := fs.String("config", "config/arrstack-mcp.yaml", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.EnsurePaths(); err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	st, err := store.OpenSQLite(context.Background(), cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return admin.Run(ctx, st)
}

func setLogLevel(logger *log.Logger, level string) {
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func usage() {
	fmt.Print(`arrstack-mcp

Usage:
  arrstack-mcp serve [--config path]
  arrstack-mcp bootstrap-clis [--config path] [--all|--codex --claude --gemini] [--scope user|project]
  arrstack-mcp admin [--config path]
  arrstack-mcp version
`)
}
