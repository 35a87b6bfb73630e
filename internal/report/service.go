// Package report generates the periodic per-user mood reports and tracks
// service metrics for the metrics endpoint.
package report

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/raghadd22/anah-mood-service/internal/config"
	"github.com/raghadd22/anah-mood-service/internal/journal"
	"github.com/raghadd22/anah-mood-service/internal/models"
	"github.com/raghadd22/anah-mood-service/internal/notifications"
)

// Service runs report generation across all journal partitions.
type Service struct {
	config              *config.Config
	journal             *journal.Service
	notificationService notifications.NotificationInterface
	metrics             *Metrics
	mu                  sync.RWMutex
}

// Metrics holds report-run metrics
type Metrics struct {
	LastRun         time.Time      `json:"last_run"`
	LastRunDuration string         `json:"last_run_duration"`
	UsersReported   int            `json:"users_reported"`
	MoodBreakdown   map[string]int `json:"mood_breakdown"`
	ErrorCount      int            `json:"error_count"`
}

// NewService creates a new report service
func NewService(cfg *config.Config, journalService *journal.Service, notificationService notifications.NotificationInterface) *Service {
	return &Service{
		config:              cfg,
		journal:             journalService,
		notificationService: notificationService,
		metrics: &Metrics{
			MoodBreakdown: make(map[string]int),
		},
	}
}

// windowDays returns the report window implied by the schedule.
func (s *Service) windowDays() int {
	if s.config.ReportSchedule == "daily" {
		return 1
	}
	return 7
}

// RunReports builds and delivers a mood report for every journal partition.
// Per-user failures are counted and logged, not fatal to the run.
func (s *Service) RunReports() error {
	start := time.Now()
	logrus.Info("Starting report run")

	users, err := s.journal.Users()
	if err != nil {
		logrus.Errorf("Failed to enumerate journal partitions: %v", err)
		return err
	}

	days := s.windowDays()
	errorCount := 0
	reported := 0
	breakdown := make(map[string]int)

	for _, user := range users {
		rep := s.BuildReport(user, days)
		if rep.Entries == 0 {
			logrus.Debugf("No entries for %s in the last %d days, skipping report", user, days)
			continue
		}

		for _, day := range rep.Window.History {
			breakdown[string(day.Dominant)]++
		}

		if err := s.notificationService.SendReport(rep); err != nil {
			logrus.Errorf("Failed to send report for %s: %v", user, err)
			errorCount++
			continue
		}
		reported++
	}

	s.updateMetrics(reported, breakdown, time.Since(start), errorCount)
	logrus.Infof("Report run completed in %v (%d reports, %d errors)", time.Since(start), reported, errorCount)
	return nil
}

// BuildReport assembles the report payload for one user over a trailing day
// window.
func (s *Service) BuildReport(user string, windowDays int) *models.Report {
	window := s.journal.WindowStats(user, windowDays)
	return &models.Report{
		GeneratedAt: time.Now(),
		Period:      s.config.ReportSchedule,
		User:        user,
		Window:      window,
		Streaks:     s.journal.Streaks(user),
		Entries:     len(window.History),
	}
}

func (s *Service) updateMetrics(reported int, breakdown map[string]int, duration time.Duration, errorCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.LastRun = time.Now()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.UsersReported = reported
	s.metrics.MoodBreakdown = breakdown
	s.metrics.ErrorCount = errorCount
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
