package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/raghadd22/anah-mood-service/internal/config"
	"github.com/raghadd22/anah-mood-service/internal/models"
)

// Service delivers mood reports via the configured channels: a JSON webhook
// and/or email.
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendReport sends a report via every configured notification channel
func (s *Service) SendReport(report *models.Report) error {
	var errors []string

	if s.config.ReportWebhookURL != "" {
		if err := s.sendToWebhook(report); err != nil {
			logrus.Errorf("Failed to send webhook notification: %v", err)
			errors = append(errors, fmt.Sprintf("Webhook: %v", err))
		} else {
			logrus.Info("Successfully sent report to webhook")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(report); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errors = append(errors, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Info("Successfully sent report via email")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (s *Service) sendToWebhook(report *models.Report) error {
	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(report).
		Post(s.config.ReportWebhookURL)

	if err != nil {
		return fmt.Errorf("failed to post report: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("report webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) sendEmail(report *models.Report) error {
	subject := fmt.Sprintf("Anah Mood Report - %s (%d entries)", report.Period, report.Entries)

	htmlBody, err := s.buildEmailHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.buildEmailText(report))
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(report *models.Report) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
    <meta charset="UTF-8">
    <title>تقرير المزاج</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; direction: rtl; }
        .header { background-color: #ccabd8; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .mood-row { border-right: 4px solid #ccabd8; padding: 10px; margin: 10px 0; background-color: #fafafa; }
    </style>
</head>
<body>
    <div class="header">
        <h1>تقرير المزاج</h1>
        <p>{{.User}} — آخر {{.Window.WindowDays}} أيام</p>
    </div>

    <div class="summary">
        <h2>الملخص</h2>
        <p><strong>عدد المذكرات:</strong> {{.Entries}}</p>
        <p><strong>السلسلة الحالية:</strong> {{.Streaks.Current}} يوم</p>
        <p><strong>أفضل سلسلة:</strong> {{.Streaks.Best}} يوم</p>
    </div>

    {{if .Window.TopMoods}}
    <h2>أكثر المشاعر حضورًا</h2>
    {{range .Window.TopMoods}}
    <div class="mood-row"><strong>{{.Mood}}</strong> — {{.Percent}}%</div>
    {{end}}
    {{end}}

    {{if .Window.History}}
    <h2>سجل الأيام</h2>
    {{range .Window.History}}
    <div class="mood-row">{{.Date}} — {{.Dominant}}</div>
    {{end}}
    {{end}}

    <hr>
    <p><small>This report was generated automatically by the Anah mood service.</small></p>
</body>
</html>
`

	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Service) buildEmailText(report *models.Report) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("Anah Mood Report - %s\n", report.Period))
	text.WriteString(fmt.Sprintf("User: %s\n", report.User))
	text.WriteString(fmt.Sprintf("Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	text.WriteString("SUMMARY\n")
	text.WriteString("=======\n")
	text.WriteString(fmt.Sprintf("Entries: %d\n", report.Entries))
	text.WriteString(fmt.Sprintf("Current streak: %d\n", report.Streaks.Current))
	text.WriteString(fmt.Sprintf("Best streak: %d\n", report.Streaks.Best))

	if len(report.Window.TopMoods) > 0 {
		text.WriteString("\nTOP MOODS\n")
		text.WriteString("=========\n")
		for _, share := range report.Window.TopMoods {
			text.WriteString(fmt.Sprintf("%s: %d%%\n", share.Mood, share.Percent))
		}
	}

	if len(report.Window.History) > 0 {
		text.WriteString("\nDAILY HISTORY\n")
		text.WriteString("=============\n")
		for _, day := range report.Window.History {
			text.WriteString(fmt.Sprintf("%s: %s\n", day.Date, day.Dominant))
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by the Anah mood service.\n")

	return text.String()
}
