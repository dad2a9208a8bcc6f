package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/towaplating/cms/internal/logger"
)

type scheduledNewsRepository interface {
	PublishDue(ctx context.Context, now time.Time) (int64, error)
}

// NewsScheduler flips scheduled news to published once their publish
// time has passed.
type NewsScheduler struct {
	news scheduledNewsRepository
	cron *cron.Cron
}

func NewNewsScheduler(news scheduledNewsRepository) (*NewsScheduler, error) {

	scheduler := &NewsScheduler{
		news: news,
		cron: cron.New(),
	}

	_, err := scheduler.cron.AddFunc("* * * * *", scheduler.publishDue)
	if err != nil {
		return nil, err
	}

	scheduler.cron.Start()
	log.Info("news scheduler started")
	return scheduler, nil
}

func (s *NewsScheduler) Stop() {
	s.cron.Stop()
}

func (s *NewsScheduler) publishDue() {
	published, err := s.news.PublishDue(context.Background(), time.Now())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to publish scheduled news: %v", err)
		return
	}
	if published > 0 {
		log.Infof("published %v scheduled news items", published)
	}
}
