package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

// CreateCommunicationRequest logs an exchange. Timestamp is when it happened, not when it was logged.
type CreateCommunicationRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Channel   string `json:"channel" validate:"required,oneof=call email sms"`
	Summary   string `json:"summary" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

type CommunicationResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Channel   string `json:"channel"`
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
	LoggedBy  string `json:"loggedBy"`
}

func CommunicationToWire(c *models.Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:        c.ID,
		StudentID: c.StudentID,
		Channel:   string(c.Channel),
		Summary:   c.Summary,
		Timestamp: FormatTimestamp(c.Timestamp),
		LoggedBy:  c.LoggedBy,
	}
}

func CommunicationsToWire(items []models.Communication) []CommunicationResponse {
	out := make([]CommunicationResponse, 0, len(items))
	for i := range items {
		out = append(out, CommunicationToWire(&items[i]))
	}
	return out
}
