package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/auth"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/metrics"
	"golang.org/x/time/rate"
)

type contextKey string

const claimsContextKey contextKey = "claims"

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// requireAuth extracts and verifies the bearer token. Any failure is
// reported uniformly; the client never learns why a token was rejected.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "認証が必要です")
			return
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeInvalidToken, "認証情報が無効です")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims)))
	})
}

func (s *Server) requireRole(role entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil || !claims.Role.Satisfies(role) {
				writeError(w, http.StatusForbidden, codeForbidden, "権限がありません")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limitPublicForms throttles anonymous submissions per client IP. The
// limiter table lives in go-cache so idle entries age out on their own.
func (s *Server) limitPublicForms(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := s.formLimiter(clientIP(r))
		if !limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, codeRateLimited, "送信回数が多すぎます。しばらくしてからもう一度お試しください")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) formLimiter(ip string) *rate.Limiter {
	if cached, found := s.limiters.Get(ip); found {
		return cached.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/5), 5)
	s.limiters.Set(ip, limiter, gocache.DefaultExpiration)
	return limiter
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsCounter.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// recoverPanics keeps the envelope contract even for programming
// errors: no handler may leak a bare 500.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Errorf("panic while handling %s %s: %v", r.Method, r.URL.Path, recovered)
				writeError(w, http.StatusInternalServerError, codeServerError, "サーバーエラーが発生しました")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
