package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the whack-a-mole SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game under the SSH user name.
Scores are stored per-server (all users share the same leaderboard).
With --http the leaderboard is also served as JSON.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.whack/host_key

Examples:
  whack serve                           # Listen on :23234 with auto-generated key
  whack serve --ssh :2222               # Listen on port 2222
  whack serve --http :8080              # Also serve the leaderboard API

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard API address (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "whack-serve")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()
	logger.Info("opened scores database", "path", flagDBPath)

	sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, cfg, store, logger.WithPrefix("whack-ssh"))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(sshServer.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return sshServer.Shutdown(shutdownCtx)
	})

	if flagHTTPAddr != "" {
		httpServer := web.New(flagHTTPAddr, logger.WithPrefix("whack-http"), store, map[string]web.Checker{
			"sqlite": web.CheckFunc(store.Ping),
		})
		g.Go(func() error {
			return httpServer.Run(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			return httpServer.Shutdown(context.Background())
		})
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(flagSSHAddr))
	fmt.Println("Press Ctrl+C to stop")

	return g.Wait()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
