package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

type CreateNoteRequest struct {
	StudentID  string `json:"studentId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Visibility string `json:"visibility" validate:"required,oneof=public private"`
}

// UpdateNoteRequest changes content, visibility or both.
type UpdateNoteRequest struct {
	Content    *string `json:"content" validate:"omitempty,min=1"`
	Visibility *string `json:"visibility" validate:"omitempty,oneof=public private"`
}

type NoteResponse struct {
	ID         string `json:"id"`
	StudentID  string `json:"studentId"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreatedBy  string `json:"createdBy"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func NoteToWire(n *models.Note) NoteResponse {
	return NoteResponse{
		ID:         n.ID,
		StudentID:  n.StudentID,
		Content:    n.Content,
		Visibility: string(n.Visibility),
		CreatedBy:  n.CreatedBy,
		CreatedAt:  FormatTimestamp(n.CreatedAt),
		UpdatedAt:  FormatTimestamp(n.UpdatedAt),
	}
}

func NotesToWire(notes []models.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NoteToWire(&notes[i]))
	}
	return out
}
