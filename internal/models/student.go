package models

import "time"

// ApplicationStatus is a student's position in the admissions pipeline.
type ApplicationStatus string

const (
	StatusProspect  ApplicationStatus = "Prospect"
	StatusApplying  ApplicationStatus = "Applying"
	StatusSubmitted ApplicationStatus = "Submitted"
	StatusAdmitted  ApplicationStatus = "Admitted"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusEnrolled  ApplicationStatus = "Enrolled"
)

// ApplicationStatuses lists the pipeline stages in their natural order.
var ApplicationStatuses = []ApplicationStatus{
	StatusProspect,
	StatusApplying,
	StatusSubmitted,
	StatusAdmitted,
	StatusRejected,
	StatusEnrolled,
}

// Student is a prospective student tracked through admissions.
type Student struct {
	ID                  string            `bson:"_id"`
	StudentCode         string            `bson:"studentId,omitempty"`
	Name                string            `bson:"name"`
	Email               string            `bson:"email"`
	Phone               string            `bson:"phone,omitempty"`
	Grade               string            `bson:"grade,omitempty"`
	Country             string            `bson:"country"`
	ApplicationStatus   ApplicationStatus `bson:"applicationStatus"`
	Tags                []string          `bson:"tags"`
	ApplyingColleges    []string          `bson:"applyingColleges,omitempty"`
	SubmittedColleges   []string          `bson:"submittedColleges,omitempty"`
	LastActive          time.Time         `bson:"lastActive"`
	CreatedAt           time.Time         `bson:"createdAt"`
	CountCommunications int               `bson:"countCommunications"`
	CountPendingTasks   int               `bson:"countPendingTasks"`
}

// StudentSortField is a field the directory can be ordered by.
type StudentSortField string

const (
	SortByName       StudentSortField = "name"
	SortByLastActive StudentSortField = "lastActive"
)

// StudentFilter selects students for search and export.
type StudentFilter struct {
	Country string
	Status  string
	Tags    []string
}

// StudentQuery is one page request against the directory.
type StudentQuery struct {
	Filter StudentFilter
	Sort   StudentSortField
	// Prefix is only honoured when sorting by name.
	Prefix string
	After  *Student
	Limit  int
}

// SortValue returns the value of the ordering field for keyset continuation.
func (s *Student) SortValue(field StudentSortField) interface{} {
	if field == SortByLastActive {
		return s.LastActive
	}
	return s.Name
}

// HasSortValue reports whether the ordering field is set. A student without one cannot anchor
// a keyset continuation because missing values never compare greater than anything.
func (s *Student) HasSortValue(field StudentSortField) bool {
	if field == SortByLastActive {
		return !s.LastActive.IsZero()
	}
	return s.Name != ""
}

// StudentFacets are the distinct filter values available across the unpaged result set.
type StudentFacets struct {
	Countries []string
	Statuses  []string
}

// StatusCount is one bucket of the status aggregation.
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int    `bson:"count"`
}
