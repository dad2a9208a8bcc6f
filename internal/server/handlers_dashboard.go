package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/towaplating/cms/internal/entities"
)

const dashboardStatsCacheKey = "dashboard:stats"

func (s *Server) mountDashboard(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/dashboard/stats", s.handleDashboardStats)
		r.Get("/dashboard/recent", s.handleDashboardRecent)
	})
}

type dashboardStats struct {
	News            int64 `json:"news"`
	Services        int64 `json:"services"`
	Equipment       int64 `json:"equipment"`
	SampleProducts  int64 `json:"sampleProducts"`
	Events          int64 `json:"events"`
	JobPositions    int64 `json:"jobPositions"`
	Inquiries       int64 `json:"inquiries"`
	UnreadInquiries int64 `json:"unreadInquiries"`
	Applications    int64 `json:"applications"`
	NewApplications int64 `json:"newApplications"`
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	if cached, found := s.cache.Get(dashboardStatsCacheKey); found {
		writeSuccess(w, http.StatusOK, cached.(*dashboardStats))
		return
	}

	stats, err := s.collectStats(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}

	s.cache.Set(dashboardStatsCacheKey, stats, gocache.DefaultExpiration)
	writeSuccess(w, http.StatusOK, stats)
}

func (s *Server) collectStats(ctx context.Context) (*dashboardStats, error) {
	stats := &dashboardStats{}

	counts := []struct {
		dest  *int64
		count func() (int64, error)
	}{
		{&stats.News, func() (int64, error) { return s.repos.News.Count(ctx, nil) }},
		{&stats.Services, func() (int64, error) { return s.repos.Services.Count(ctx, nil) }},
		{&stats.Equipment, func() (int64, error) { return s.repos.Equipment.Count(ctx, nil) }},
		{&stats.SampleProducts, func() (int64, error) { return s.repos.SampleProducts.Count(ctx, nil) }},
		{&stats.Events, func() (int64, error) { return s.repos.Events.Count(ctx, nil) }},
		{&stats.JobPositions, func() (int64, error) { return s.repos.JobPositions.Count(ctx, nil) }},
		{&stats.Inquiries, func() (int64, error) { return s.repos.Inquiries.Count(ctx, nil) }},
		{&stats.UnreadInquiries, func() (int64, error) {
			return s.repos.Inquiries.Count(ctx, map[string]any{"status": entities.InquiryUnread})
		}},
		{&stats.Applications, func() (int64, error) { return s.repos.Applications.Count(ctx, nil) }},
		{&stats.NewApplications, func() (int64, error) {
			return s.repos.Applications.Count(ctx, map[string]any{"status": entities.ApplicationNew})
		}},
	}

	for _, c := range counts {
		value, err := c.count()
		if err != nil {
			return nil, err
		}
		*c.dest = value
	}

	return stats, nil
}

type recentApplication struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	ReferenceNumber string `json:"referenceNumber"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

type recentInquiry struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (s *Server) handleDashboardRecent(w http.ResponseWriter, r *http.Request) {
	const recentCount = 5

	inquiries, err := s.repos.Inquiries.Latest(r.Context(), recentCount)
	if err != nil {
		writeServerError(w, err)
		return
	}
	applications, err := s.repos.Applications.Latest(r.Context(), recentCount)
	if err != nil {
		writeServerError(w, err)
		return
	}
	news, err := s.repos.News.Latest(r.Context(), recentCount)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"inquiries": lo.Map(inquiries, func(item entities.Inquiry, _ int) recentInquiry {
			return recentInquiry{
				ID:        item.ID,
				Name:      item.Name,
				Service:   item.Service,
				Status:    string(item.Status),
				CreatedAt: item.CreatedAt.Format("2006-01-02 15:04"),
			}
		}),
		"applications": lo.Map(applications, func(item entities.Application, _ int) recentApplication {
			return recentApplication{
				ID:              item.ID,
				Name:            item.Name,
				Position:        item.Position,
				ReferenceNumber: item.ReferenceNumber,
				Status:          string(item.Status),
				CreatedAt:       item.CreatedAt.Format("2006-01-02 15:04"),
			}
		}),
		"news": news,
	})
}
