package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

type GlobalConfigResponse struct {
	Tags                   []string `json:"tags"`
	CommunicationTypes     []string `json:"communicationTypes"`
	TaskStatuses           []string `json:"taskStatuses"`
	DefaultReminderDays    int      `json:"defaultReminderDays"`
	StudentStatusSortOrder []string `json:"studentStatusSortOrder"`
	UpdatedAt              string   `json:"updatedAt,omitempty"`
}

// UpdateGlobalConfigRequest replaces the whole singleton.
type UpdateGlobalConfigRequest struct {
	Tags                   []string `json:"tags" validate:"required,dive,required"`
	CommunicationTypes     []string `json:"communicationTypes" validate:"required,dive,required"`
	TaskStatuses           []string `json:"taskStatuses" validate:"required,dive,required"`
	DefaultReminderDays    int      `json:"defaultReminderDays" validate:"gte=0,lte=365"`
	StudentStatusSortOrder []string `json:"studentStatusSortOrder" validate:"required,dive,required"`
}

func GlobalConfigToWire(cfg *models.GlobalConfig) GlobalConfigResponse {
	return GlobalConfigResponse{
		Tags:                   nonNil(cfg.Tags),
		CommunicationTypes:     nonNil(cfg.CommunicationTypes),
		TaskStatuses:           nonNil(cfg.TaskStatuses),
		DefaultReminderDays:    cfg.DefaultReminderDays,
		StudentStatusSortOrder: nonNil(cfg.StudentStatusSortOrder),
		UpdatedAt:              FormatTimestamp(cfg.UpdatedAt),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
