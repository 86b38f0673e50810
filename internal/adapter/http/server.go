package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"bmicalc/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	assess      *app.AssessmentService
	trend       *app.TrendService
	authSvc     *app.AuthService
	log         *zap.Logger
	oidcConfig  OIDCConfig
	disableAuth bool
	forwardAuth bool
}

// New creates a Server wired to the given application services. A nil
// logger disables request logging.
func New(as *app.AssessmentService, ts *app.TrendService, auth *app.AuthService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{assess: as, trend: ts, authSvc: auth, log: log}
}

// WithOIDC enables the SSO login endpoints.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithForwardAuth trusts the Remote-User header set by an authenticating
// reverse proxy. Only enable it when the proxy strips client-supplied copies.
func (s *Server) WithForwardAuth() *Server {
	s.forwardAuth = true
	return s
}

// WithoutAuth serves every route as the anonymous user 0.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/categories", s.handleCategories)
	api.HandleFunc("/bmi", s.handleCompute)

	api.Handle("/assessments", s.authMiddleware(http.HandlerFunc(s.handleAssessmentCreate)))
	api.Handle("/assessments/today", s.authMiddleware(http.HandlerFunc(s.handleAssessmentToday)))
	api.Handle("/assessments/recent", s.authMiddleware(http.HandlerFunc(s.handleAssessmentRecent)))
	api.Handle("/assessments/undo-last", s.authMiddleware(http.HandlerFunc(s.handleAssessmentUndoLast)))

	api.Handle("/trend/daily", s.authMiddleware(http.HandlerFunc(s.handleTrendDaily)))

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
