package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

// StudentSearchRequest is bound from the search query string.
type StudentSearchRequest struct {
	Cursor  string `form:"cursor"`
	Country string `form:"country"`
	// Tags accepts repeated parameters, comma lists, or both.
	Tags    []string `form:"tags"`
	Status  string `form:"status"`
	Search  string `form:"search"`
	Sort    string `form:"sort"`
}

// StudentExportRequest accepts the search filters plus an output format.
type StudentExportRequest struct {
	StudentSearchRequest
	Format string `form:"format"`
}

type StudentResponse struct {
	ID                  string   `json:"id"`
	StudentID           string   `json:"studentId,omitempty"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone,omitempty"`
	Grade               string   `json:"grade,omitempty"`
	Country             string   `json:"country"`
	ApplicationStatus   string   `json:"applicationStatus"`
	Tags                []string `json:"tags"`
	ApplyingColleges    []string `json:"applyingColleges,omitempty"`
	SubmittedColleges   []string `json:"submittedColleges,omitempty"`
	LastActive          string   `json:"lastActive,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	CountCommunications int      `json:"countCommunications"`
	CountPendingTasks   int      `json:"countPendingTasks"`
}

type Pagination struct {
	HasNextPage bool    `json:"hasNextPage"`
	NextCursor  *string `json:"nextCursor"`
}

type FilterOptions struct {
	Tags      []string `json:"tags"`
	Statuses  []string `json:"statuses"`
	Countries []string `json:"countries"`
}

type StudentSearchResponse struct {
	Students      []StudentResponse `json:"students"`
	Pagination    Pagination        `json:"pagination"`
	FilterOptions FilterOptions     `json:"filterOptions"`
}

// StudentStatsResponse carries a count per pipeline status plus "total".
type StudentStatsResponse struct {
	Summary map[string]int `json:"summary"`
}

func StudentToWire(s *models.Student) StudentResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return StudentResponse{
		ID:                  s.ID,
		StudentID:           s.StudentCode,
		Name:                s.Name,
		Email:               s.Email,
		Phone:               s.Phone,
		Grade:               s.Grade,
		Country:             s.Country,
		ApplicationStatus:   string(s.ApplicationStatus),
		Tags:                tags,
		ApplyingColleges:    s.ApplyingColleges,
		SubmittedColleges:   s.SubmittedColleges,
		LastActive:          FormatTimestamp(s.LastActive),
		CreatedAt:           FormatTimestamp(s.CreatedAt),
		CountCommunications: s.CountCommunications,
		CountPendingTasks:   s.CountPendingTasks,
	}
}

func StudentsToWire(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, StudentToWire(&students[i]))
	}
	return out
}
