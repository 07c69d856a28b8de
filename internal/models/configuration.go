package models

import "time"

// GlobalConfigID is the _id of the singleton configuration document.
const GlobalConfigID = "global"

// GlobalConfig holds the shared vocabularies used across the CRM.
type GlobalConfig struct {
	ID                     string    `bson:"_id"`
	Tags                   []string  `bson:"tags"`
	CommunicationTypes     []string  `bson:"communicationTypes"`
	TaskStatuses           []string  `bson:"taskStatuses"`
	DefaultReminderDays    int       `bson:"defaultReminderDays"`
	StudentStatusSortOrder []string  `bson:"studentStatusSortOrder"`
	UpdatedAt              time.Time `bson:"updatedAt,omitempty"`
}

// EmptyGlobalConfig is what readers see when the singleton has never been written.
func EmptyGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ID:                     GlobalConfigID,
		Tags:                   []string{},
		CommunicationTypes:     []string{},
		TaskStatuses:           []string{},
		StudentStatusSortOrder: []string{},
	}
}
