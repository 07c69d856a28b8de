package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

type CreateInteractionRequest struct {
	StudentID   string                 `json:"studentId" validate:"required"`
	Type        string                 `json:"type" validate:"required,oneof=login 'AI question' 'document upload' 'document download'"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type InteractionResponse struct {
	ID          string                 `json:"id"`
	StudentID   string                 `json:"studentId"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Timestamp   string                 `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func InteractionToWire(i *models.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:          i.ID,
		StudentID:   i.StudentID,
		Type:        string(i.Type),
		Description: i.Description,
		Timestamp:   FormatTimestamp(i.Timestamp),
		Metadata:    i.Metadata,
	}
}

func InteractionsToWire(items []models.Interaction) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(items))
	for i := range items {
		out = append(out, InteractionToWire(&items[i]))
	}
	return out
}
