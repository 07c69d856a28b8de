package models

import "time"

type CommunicationChannel string

const (
	ChannelCall  CommunicationChannel = "call"
	ChannelEmail CommunicationChannel = "email"
	ChannelSMS   CommunicationChannel = "sms"
)

// Communication records a call, email or text exchanged with a student. Append-only.
type Communication struct {
	ID        string               `bson:"_id"`
	StudentID string               `bson:"studentId"`
	Channel   CommunicationChannel `bson:"channel"`
	Summary   string               `bson:"summary"`
	Timestamp time.Time            `bson:"timestamp"`
	LoggedBy  string               `bson:"loggedBy"`
}
