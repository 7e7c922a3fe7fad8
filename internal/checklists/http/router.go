package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/metrics"
	"github.com/aussiebroadwan/checklists/internal/checklists/service"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/pkg/httpx"
	"github.com/aussiebroadwan/checklists/pkg/slogx"

	_ "github.com/aussiebroadwan/checklists/api/checklists" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokenHeader  string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	UserService      *service.UserService
	TokenService     *service.TokenService
	ChecklistService *service.ChecklistService

	// Metrics receives one observation per request. Nil disables it.
	Metrics metrics.Recorder
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(
	tokenHeader, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	if tokenHeader == "" {
		tokenHeader = httpx.DefaultTokenHeader
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		tokenHeader:  tokenHeader,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerChecklists()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Checklists API
//	@version		0.1.0
//	@description	Per-user checklists with email and password accounts.
//	@description
//	@description				Every session is a signed token returned in the x-auth response header of registration and login. Send it back in the x-auth request header.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/checklists
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-auth
//	@description				Session token issued by POST /users or POST /users/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern with per-route instrumentation outside
// the given middlewares, so rejected requests are counted too.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	mws = append([]httpx.Middleware{instrument(r.Metrics, pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

// authenticated is the chain for every route that needs a session.
func (r *Router) authenticated(limit httpx.RateLimitConfig) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.tokenHeader, TokenVerifier(r.TokenService)),
		httpx.RateLimitByUser(limit),
	}
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
		TokenHeader:  r.tokenHeader,
	}

	// Registration and login - strict rate limit by IP + email (brute force)
	r.handle("POST /users", http.HandlerFunc(h.HandleRegister),
		httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
	)
	r.handle("POST /users/login", http.HandlerFunc(h.HandleLogin),
		httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
	)

	r.handle("GET /users/me", http.HandlerFunc(h.HandleMe), r.authenticated(httpx.LenientLimit)...)
	r.handle("DELETE /users/me/token", http.HandlerFunc(h.HandleLogout), r.authenticated(httpx.ModerateLimit)...)
}

func (r *Router) registerChecklists() {
	h := &ChecklistsHandler{ChecklistService: r.ChecklistService}
	secured := r.authenticated(httpx.LenientLimit)

	r.handle("POST /checklists", http.HandlerFunc(h.HandleCreate), secured...)
	r.handle("GET /checklists", http.HandlerFunc(h.HandleList), secured...)
	r.handle("GET /checklists/{id}", http.HandlerFunc(h.HandleGet), secured...)
	r.handle("PATCH /checklists/{id}", http.HandlerFunc(h.HandleUpdate), secured...)
	r.handle("DELETE /checklists/{id}", http.HandlerFunc(h.HandleDelete), secured...)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)

	if r.MetricsHandler != nil {
		r.Mux.Handle("GET /metrics", httpx.Chain(r.MetricsHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		))
	}
}
