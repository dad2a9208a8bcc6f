package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/auth"
	"github.com/towaplating/cms/internal/clients/gemini"
	"github.com/towaplating/cms/internal/clients/media"
	"github.com/towaplating/cms/internal/config"
	"github.com/towaplating/cms/internal/entities"
	"github.com/towaplating/cms/internal/logger"
	"github.com/towaplating/cms/internal/metrics"
	"github.com/towaplating/cms/internal/repositories"
	"github.com/towaplating/cms/internal/server"
	"github.com/towaplating/cms/internal/services"
)

func buildRepositories(dbContext *repositories.DbContext) server.Repositories {
	db := dbContext.DB
	counters := repositories.NewCountersRepository(db)

	return server.Repositories{
		News:             repositories.NewNewsRepository(db),
		Services:         repositories.NewResource[entities.Service](db, "sort_order ASC"),
		Equipment:        repositories.NewResource[entities.Equipment](db, "sort_order ASC"),
		SampleProducts:   repositories.NewResource[entities.SampleProduct](db, "sort_order ASC"),
		Events:           repositories.NewResource[entities.Event](db, "created_at DESC"),
		JobPositions:     repositories.NewResource[entities.JobPosition](db, "created_at DESC"),
		Inquiries:        repositories.NewInquiriesRepository(db),
		Applications:     repositories.NewApplicationsRepository(db, counters),
		HomepageSections: repositories.NewHomepageSectionsRepository(db),
		Settings:         repositories.NewCachedSettings(repositories.NewSettingsRepository(db)),
		Company:          repositories.NewCompanyRepository(db),
		Users:            repositories.NewUsersRepository(db),
	}
}

func buildAssistant(ctx context.Context, cfg config.AIConfig) *services.Assistant {
	if !cfg.Enabled() {
		log.Info("AI assistant disabled: no API key configured")
		return nil
	}

	model := gemini.Model15Flash
	if cfg.Model != "" {
		model = gemini.Model(cfg.Model)
	}

	aiClient, err := gemini.NewClient(ctx, cfg.Key, model)
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	if cfg.MaxRequestsPerMinute > 0 {
		aiClient.SetMinuteRateLimit(cfg.MaxRequestsPerMinute)
	}

	return services.NewAssistant(aiClient)
}

func buildMediaClient(cfg config.MediaConfig) *media.Client {
	if cfg.BaseURL == "" {
		log.Info("media uploads disabled: no base url configured")
		return nil
	}

	client := media.NewClient(cfg.BaseURL, cfg.APIKey)
	if cfg.MaxRequestsPerSecond > 0 {
		client.SetRateLimit(cfg.MaxRequestsPerSecond)
	}
	return client
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	metrics.Register()
	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("can't hash admin password: %v", err)
	}
	if err = dbContext.EnsureAdmin(cfg.Auth.AdminName, cfg.Auth.AdminEmail, passwordHash); err != nil {
		log.Fatalf("can't ensure admin user: %v", err)
	}

	repos := buildRepositories(dbContext)
	bus := EventBus.New()

	if cfg.Notifier.Enabled() {
		if _, err = services.NewNotifier(cfg.Notifier.TgToken, cfg.Notifier.TgChatID, bus); err != nil {
			log.Fatalf("can't create notifier: %v", err)
		}
	} else {
		log.Info("operator notifications disabled: no telegram credentials configured")
	}

	scheduler, err := services.NewNewsScheduler(repos.News)
	if err != nil {
		log.Fatalf("can't create news scheduler: %v", err)
	}
	defer scheduler.Stop()

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	srv := server.NewServer(cfg.Server, tokens, bus, repos,
		buildMediaClient(cfg.Media), buildAssistant(ctx, cfg.AI))

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
