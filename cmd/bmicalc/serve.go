package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adapthttp "bmicalc/internal/adapter/http"
	"bmicalc/internal/adapter/memory"
	"bmicalc/internal/adapter/postgres"
	"bmicalc/internal/adapter/sqlite"
	"bmicalc/internal/app"
	"bmicalc/internal/config"
	"bmicalc/internal/domain"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Hour
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.String("store", config.StoreMemory, "storage backend: memory, postgres or sqlite")
	f.String("database-url", "", "PostgreSQL connection string")
	f.String("sqlite-path", "bmicalc.db", "SQLite database file")
	f.Bool("no-auth", false, "serve every request as a single anonymous user")
	f.Bool("trust-forward-auth", false, "accept the Remote-User header from an authenticating reverse proxy")
	_ = v.BindPFlag("addr", f.Lookup("addr"))
	_ = v.BindPFlag("store", f.Lookup("store"))
	_ = v.BindPFlag("database_url", f.Lookup("database-url"))
	_ = v.BindPFlag("sqlite_path", f.Lookup("sqlite-path"))
	_ = v.BindPFlag("auth_disabled", f.Lookup("no-auth"))
	_ = v.BindPFlag("trust_forward_auth", f.Lookup("trust-forward-auth"))

	rootCmd.AddCommand(serveCmd)
}

// stores groups the repositories of one backend.
type stores struct {
	assessments domain.AssessmentRepository
	users       domain.UserRepository
	sessions    domain.SessionRepository
	close       func() error
}

func openStores(cfg config.Config) (*stores, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &stores{assessments: db, users: db, sessions: postgres.NewSessionRepo(db), close: db.Close}, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &stores{assessments: db, users: db, sessions: sqlite.NewSessionRepo(db), close: db.Close}, nil
	default:
		db := memory.New()
		return &stores{assessments: db, users: db, sessions: db.NewSessionRepo(), close: func() error { return nil }}, nil
	}
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}()

	authSvc := app.NewAuthService(st.users, st.sessions, cfg.SessionTTL)
	srv := adapthttp.New(
		app.NewAssessmentService(st.assessments),
		app.NewTrendService(st.assessments),
		authSvc,
		log,
	)
	if cfg.AuthDisabled {
		log.Warn("authentication disabled; all data belongs to one anonymous user")
		srv.WithoutAuth()
	}
	if cfg.TrustForwardAuth {
		srv.WithForwardAuth()
	}
	if cfg.OIDC.Enabled() {
		oc, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
		if err != nil {
			return err
		}
		srv.WithOIDC(oc)
	}

	go pruneSessions(ctx, authSvc, log)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func pruneSessions(ctx context.Context, auth *app.AuthService, log *zap.Logger) {
	t := time.NewTicker(pruneInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := auth.PruneSessions(ctx); err != nil {
				log.Warn("prune sessions", zap.Error(err))
			}
		}
	}
}
