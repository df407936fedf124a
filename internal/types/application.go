// Package types provides type definitions for the candidate, job, and application
// records shared across the hireflow matching and lifecycle packages.
package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Status values mirror the application_status column in PostgreSQL.
type Status string

// Application statuses. Accepted, rejected, and withdrawn are terminal.
const (
	StatusPending     Status = "pending"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusInterview,
		StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Timeline actions recorded on the application audit trail.
const (
	ActionApplied            = "applied"
	ActionStatusUpdated      = "status_updated"
	ActionInterviewScheduled = "interview_scheduled"
	ActionAccepted           = "accepted"
	ActionRejected           = "rejected"
	ActionWithdrawn          = "withdrawn"
	ActionNoteAdded          = "note_added"
	ActionCommunicationSent  = "communication_sent"
)

// TimelineEntry is a single fact on the append-only audit trail. Status fields
// are only populated for entries produced by a status change.
type TimelineEntry struct {
	Action         string    `json:"action"`
	PerformedBy    uuid.UUID `json:"performed_by"`
	Notes          string    `json:"notes,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	PreviousStatus Status    `json:"previous_status,omitempty"`
	NewStatus      Status    `json:"new_status,omitempty"`
}

// Note is a staff or applicant annotation attached to an application.
type Note struct {
	Author    uuid.UUID `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Communication is a logged outbound message attached to an application.
// Delivery itself belongs to the notification collaborator.
type Communication struct {
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	Body    string    `json:"body,omitempty"`
	Author  uuid.UUID `json:"author"`
	SentAt  time.Time `json:"sent_at"`
}

// ViewRecord tracks one reviewer's first look at an application.
type ViewRecord struct {
	UserID   uuid.UUID `json:"user_id"`
	ViewedAt time.Time `json:"viewed_at"`
}

// Application is the mutable entity owned behaviorally by the lifecycle
// package. Status must only change through lifecycle operations; Timeline,
// Notes, and Communications are append-only.
type Application struct {
	ID              uuid.UUID         `json:"id"`
	JobID           uuid.UUID         `json:"job_id"`
	EmployerID      uuid.UUID         `json:"employer_id"`
	ApplicantID     uuid.UUID         `json:"applicant_id"`
	ResumeRef       string            `json:"resume_ref,omitempty"`
	Answers         map[string]string `json:"answers,omitempty"`
	Status          Status            `json:"status"`
	Score           int               `json:"score"`
	SkillsMatch     int               `json:"skills_match"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Timeline        []TimelineEntry   `json:"timeline"`
	Notes           []Note            `json:"notes,omitempty"`
	Communications  []Communication   `json:"communications,omitempty"`
	ViewedAt        *time.Time        `json:"viewed_at,omitempty"`
	LastViewedAt    *time.Time        `json:"last_viewed_at,omitempty"`
	ViewedBy        []ViewRecord      `json:"viewed_by,omitempty"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// SubmissionContext carries the inputs the application-submission endpoint
// provides when a candidate applies to a job.
type SubmissionContext struct {
	JobID       uuid.UUID         `json:"job_id" validate:"required"`
	EmployerID  uuid.UUID         `json:"employer_id" validate:"required"`
	ApplicantID uuid.UUID         `json:"applicant_id" validate:"required"`
	ResumeRef   string            `json:"resume_ref" validate:"required"`
	Answers     map[string]string `json:"answers,omitempty"`
}

// Validate validates the SubmissionContext using the validator.
func (s *SubmissionContext) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
