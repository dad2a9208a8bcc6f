package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/auth"
	"github.com/towaplating/cms/internal/clients/media"
	"github.com/towaplating/cms/internal/config"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/repositories"
	"github.com/towaplating/cms/internal/services"
)

type Repositories struct {
	News             *repositories.News
	Services         *repositories.Resource[entities.Service]
	Equipment        *repositories.Resource[entities.Equipment]
	SampleProducts   *repositories.Resource[entities.SampleProduct]
	Events           *repositories.Resource[entities.Event]
	JobPositions     *repositories.Resource[entities.JobPosition]
	Inquiries        *repositories.Inquiries
	Applications     *repositories.Applications
	HomepageSections *repositories.HomepageSections
	Settings         *repositories.CachedSettings
	Company          *repositories.CompanyStore
	Users            *repositories.Users
}

type Server struct {
	cfg        config.ServerConfig
	tokens     *auth.Tokens
	validate   *validator.Validate
	bus        EventBus.Bus
	repos      Repositories
	media      *media.Client
	assistant  *services.Assistant
	cache      *gocache.Cache
	limiters   *gocache.Cache
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, tokens *auth.Tokens, bus EventBus.Bus,
	repos Repositories, mediaClient *media.Client, assistant *services.Assistant) *Server {

	s := &Server{
		cfg:       cfg,
		tokens:    tokens,
		validate:  validator.New(),
		bus:       bus,
		repos:     repos,
		media:     mediaClient,
		assistant: assistant,
		cache:     gocache.New(time.Minute, 5*time.Minute),
		limiters:  gocache.New(10*time.Minute, 20*time.Minute),
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the full router; exposed separately so tests can drive
// the server through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(withMetrics)
	r.Use(recoverPanics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.With(s.requireAuth).Get("/auth/me", s.handleMe)

		s.mountNews(r)

		newResourceAPI(s, s.repos.Services, "/services", map[string]string{
			"published": "is_published",
		}).mount(r)
		newResourceAPI(s, s.repos.Equipment, "/equipment", map[string]string{
			"category": "category",
			"visible":  "is_visible",
		}).mount(r)
		newResourceAPI(s, s.repos.SampleProducts, "/sample-products", map[string]string{
			"category": "category",
			"visible":  "is_visible",
		}).mount(r)
		newResourceAPI(s, s.repos.Events, "/events", map[string]string{
			"status": "status",
		}).mount(r)
		newResourceAPI(s, s.repos.JobPositions, "/job-positions", map[string]string{
			"open": "is_open",
		}).mount(r)

		s.mountInquiries(r)
		s.mountApplications(r)
		s.mountHomepageSections(r)
		s.mountSettings(r)
		s.mountUploads(r)
		s.mountDashboard(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *Server) corsOrigins() []string {
	var origins []string
	for _, part := range strings.Split(s.cfg.CorsOrigins, ",") {
		if origin := strings.TrimRight(strings.TrimSpace(part), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func (s *Server) Run() error {
	log.Infof("API listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
