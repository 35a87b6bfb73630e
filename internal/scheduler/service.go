package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/raghadd22/anah-mood-service/internal/config"
	"github.com/raghadd22/anah-mood-service/internal/report"
)

// Service handles scheduling of report runs
type Service struct {
	config        *config.Config
	reportService *report.Service
	cron          *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, reportService *report.Service) *Service {
	return &Service{
		config:        cfg,
		reportService: reportService,
		cron:          cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled report runs
func (s *Service) Start() error {
	var cronExpression string

	switch s.config.ReportSchedule {
	case "daily":
		// Run daily at 9 AM UTC
		cronExpression = "0 0 9 * * *"
	case "weekly":
		// Run weekly on Monday at 9 AM UTC
		cronExpression = "0 0 9 * * MON"
	default:
		cronExpression = "0 0 9 * * MON"
	}

	_, err := s.cron.AddFunc(cronExpression, func() {
		logrus.Info("Starting scheduled report run")
		if err := s.reportService.RunReports(); err != nil {
			logrus.Errorf("Scheduled report run failed: %v", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s schedule", s.config.ReportSchedule)
	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
