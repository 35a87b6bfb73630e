package notifications

import "github.com/raghadd22/anah-mood-service/internal/models"

// NotificationInterface defines the contract for report delivery services
type NotificationInterface interface {
	SendReport(report *models.Report) error
}
