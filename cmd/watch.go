package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitadash/vitadash/internal/config"
	"github.com/vitadash/vitadash/internal/daemon"

	"github.com/spf13/cobra"
)

var (
	flagWatchAddr     string
	flagWatchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch today's summary in the background with HTTP/SSE endpoints",
	Long: `Polls today's records on an interval and serves the current summary
over a small local HTTP API:

  GET /healthz     liveness check
  GET /v1/status   watcher state and latest summary
  GET /v1/events   recent change events
  GET /v1/stream   live change events (server-sent events)`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", "127.0.0.1:8787", "HTTP listen address")
	watchCmd.Flags().DurationVar(&flagWatchInterval, "interval", 30*time.Second, "Poll interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	user, err := resolveUser(cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	svc := daemon.New(st, daemon.Config{
		User:     user,
		Interval: flagWatchInterval,
		Addr:     flagWatchAddr,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching today for %s on http://%s (Ctrl+C to stop)\n", user, flagWatchAddr)
	return svc.Run(ctx)
}
