package models

import "time"

type InteractionType string

const (
	InteractionLogin            InteractionType = "login"
	InteractionAIQuestion       InteractionType = "AI question"
	InteractionDocumentUpload   InteractionType = "document upload"
	InteractionDocumentDownload InteractionType = "document download"
)

// Interaction is an activity event reported by the student-facing product. Append-only.
type Interaction struct {
	ID          string                 `bson:"_id"`
	StudentID   string                 `bson:"studentId"`
	Type        InteractionType        `bson:"type"`
	Description string                 `bson:"description"`
	Timestamp   time.Time              `bson:"timestamp"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty"`
}
