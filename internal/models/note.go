package models

import "time"

type NoteVisibility string

const (
	NotePublic  NoteVisibility = "public"
	NotePrivate NoteVisibility = "private"
)

// Note is free-form staff commentary attached to a student.
type Note struct {
	ID         string         `bson:"_id"`
	StudentID  string         `bson:"studentId"`
	Content    string         `bson:"content"`
	Visibility NoteVisibility `bson:"visibility"`
	CreatedBy  string         `bson:"createdBy"`
	CreatedAt  time.Time      `bson:"createdAt"`
	UpdatedAt  time.Time      `bson:"updatedAt"`
}

// NoteChanges is a partial update; nil fields are left untouched.
type NoteChanges struct {
	Content    *string
	Visibility *NoteVisibility
	UpdatedAt  time.Time
}
