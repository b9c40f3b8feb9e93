package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lymphiz/internal/api"
	"github.com/abhisek/lymphiz/internal/metrics"
	"github.com/abhisek/lymphiz/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve quiz sessions over a JSON HTTP API",
	Long: `Start the HTTP API. Each client creates its own session and plays
through /api/sessions. Prometheus metrics are served on /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides LYMPHIZ_HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	addr := rt.cfg.HTTPAddr
	if cmd.Flags().Changed("addr") {
		addr, _ = cmd.Flags().GetString("addr")
	}

	var sessions *session.Manager
	collector := metrics.NewCollector(func() int { return sessions.Len() })
	sessions = session.NewManager(rt.engine, session.ManagerConfig{
		Seed:     rt.cfg.Seed,
		TTL:      rt.cfg.SessionTTL,
		Logger:   rt.log.Named("sessions"),
		Recorder: collector,
	})

	sweep := rt.cfg.SessionTTL / 4
	srv := api.New(api.Options{
		Addr:          addr,
		CORSOrigins:   rt.cfg.CORSOrigins,
		RateLimit:     rt.cfg.RateLimit,
		RateBurst:     rt.cfg.RateBurst,
		SweepInterval: sweep,
	}, rt.dataset, sessions, collector, rt.log.Named("http"))

	rt.log.Info("starting server",
		zap.String("addr", addr),
		zap.Duration("session_ttl", rt.cfg.SessionTTL))
	return srv.Run(cmd.Context())
}
