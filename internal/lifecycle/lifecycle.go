package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/types"
)

// Create produces a new application in pending status with a single "applied"
// timeline entry. The submission context must validate; nothing else may
// construct an Application.
func Create(sub types.SubmissionContext) (*types.Application, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := &types.Application{
		ID:          uuid.New(),
		JobID:       sub.JobID,
		EmployerID:  sub.EmployerID,
		ApplicantID: sub.ApplicantID,
		ResumeRef:   sub.ResumeRef,
		Answers:     sub.Answers,
		Status:      types.StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	app.Timeline = append(app.Timeline, types.TimelineEntry{
		Action:      types.ActionApplied,
		PerformedBy: sub.ApplicantID,
		Timestamp:   now,
		NewStatus:   types.StatusPending,
	})
	return app, nil
}

// SetStatus moves the application to newStatus, appending a status_updated
// timeline entry recording the previous and new status. Some targets append
// an additional entry of their own (interview_scheduled, accepted, rejected):
// "moved to interview" and "interview scheduled" are distinct facts in the
// review workflow. A first transition to reviewed also stamps the view
// metadata. The returned entry is the status_updated one.
//
// A transition not permitted from the current state fails with
// ErrInvalidTransition and leaves the entity untouched.
func SetStatus(app *types.Application, newStatus types.Status, actor uuid.UUID, notes string) (*types.TimelineEntry, error) {
	if _, err := types.ParseStatus(string(newStatus)); err != nil {
		return nil, &ErrInvalidTransition{From: app.Status, To: newStatus}
	}
	if !IsTransitionAllowed(app.Status, newStatus) {
		return nil, &ErrInvalidTransition{From: app.Status, To: newStatus}
	}

	now := time.Now().UTC()
	prev := app.Status
	app.Status = newStatus
	app.UpdatedAt = now

	entry := types.TimelineEntry{
		Action:         types.ActionStatusUpdated,
		PerformedBy:    actor,
		Notes:          notes,
		Timestamp:      now,
		PreviousStatus: prev,
		NewStatus:      newStatus,
	}
	app.Timeline = append(app.Timeline, entry)

	switch newStatus {
	case types.StatusReviewed:
		recordView(app, actor, now)
	case types.StatusInterview:
		appendEvent(app, types.ActionInterviewScheduled, actor, now, newStatus)
	case types.StatusAccepted:
		appendEvent(app, types.ActionAccepted, actor, now, newStatus)
	case types.StatusRejected:
		appendEvent(app, types.ActionRejected, actor, now, newStatus)
	}

	return &entry, nil
}

// Reject transitions the application to rejected and records the reason on
// the entity, outside the timeline.
func Reject(app *types.Application, actor uuid.UUID, reason string) (*types.TimelineEntry, error) {
	entry, err := SetStatus(app, types.StatusRejected, actor, "")
	if err != nil {
		return nil, err
	}
	app.RejectionReason = reason
	return entry, nil
}

// MarkViewed records a soft view independent of status: the first call stamps
// ViewedAt, every call updates LastViewedAt, and ViewedBy gains at most one
// entry per user. A pending application is auto-transitioned to reviewed on
// first view, covering read and resume-download actions that imply review.
func MarkViewed(app *types.Application, viewer uuid.UUID) {
	now := time.Now().UTC()
	recordView(app, viewer, now)

	if app.Status == types.StatusPending {
		prev := app.Status
		app.Status = types.StatusReviewed
		app.UpdatedAt = now
		app.Timeline = append(app.Timeline, types.TimelineEntry{
			Action:         types.ActionStatusUpdated,
			PerformedBy:    viewer,
			Timestamp:      now,
			PreviousStatus: prev,
			NewStatus:      types.StatusReviewed,
		})
	}
}

// AddNote appends a note and a note_added timeline entry. Never changes
// status.
func AddNote(app *types.Application, text string, author uuid.UUID) (*types.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ErrValidation{Field: "text", Message: "note text is required"}
	}

	now := time.Now().UTC()
	note := types.Note{Author: author, Text: text, CreatedAt: now}
	app.Notes = append(app.Notes, note)
	app.Timeline = append(app.Timeline, types.TimelineEntry{
		Action:      types.ActionNoteAdded,
		PerformedBy: author,
		Timestamp:   now,
	})
	app.UpdatedAt = now
	return &note, nil
}

// AddCommunication logs an outbound message and appends a communication_sent
// timeline entry. Delivery belongs to the notification collaborator; this
// only records the fact. Never changes status.
func AddCommunication(app *types.Application, commType, subject, body string, author uuid.UUID) (*types.Communication, error) {
	if strings.TrimSpace(commType) == "" {
		return nil, &ErrValidation{Field: "type", Message: "communication type is required"}
	}
	if strings.TrimSpace(subject) == "" {
		return nil, &ErrValidation{Field: "subject", Message: "communication subject is required"}
	}

	now := time.Now().UTC()
	comm := types.Communication{
		Type:    commType,
		Subject: subject,
		Body:    body,
		Author:  author,
		SentAt:  now,
	}
	app.Communications = append(app.Communications, comm)
	app.Timeline = append(app.Timeline, types.TimelineEntry{
		Action:      types.ActionCommunicationSent,
		PerformedBy: author,
		Notes:       subject,
		Timestamp:   now,
	})
	app.UpdatedAt = now
	return &comm, nil
}

// Withdraw lets the original applicant retract their application from any
// non-terminal state. Anyone else gets ErrForbidden; a terminal application
// gets ErrInvalidTransition. Failure leaves the entity untouched.
func Withdraw(app *types.Application, applicant uuid.UUID) error {
	if applicant != app.ApplicantID {
		return &ErrForbidden{UserID: applicant, Action: "withdraw"}
	}
	if !IsTransitionAllowed(app.Status, types.StatusWithdrawn) {
		return &ErrInvalidTransition{From: app.Status, To: types.StatusWithdrawn}
	}

	now := time.Now().UTC()
	prev := app.Status
	app.Status = types.StatusWithdrawn
	app.UpdatedAt = now
	app.Timeline = append(app.Timeline, types.TimelineEntry{
		Action:         types.ActionWithdrawn,
		PerformedBy:    applicant,
		Timestamp:      now,
		PreviousStatus: prev,
		NewStatus:      types.StatusWithdrawn,
	})
	app.Notes = append(app.Notes, types.Note{
		Author:    applicant,
		Text:      "Application withdrawn by applicant",
		CreatedAt: now,
	})
	return nil
}

// recordView stamps first-view metadata and keeps ViewedBy free of duplicate
// user entries. A user's ViewRecord keeps their first view time.
func recordView(app *types.Application, viewer uuid.UUID, now time.Time) {
	if app.ViewedAt == nil {
		first := now
		app.ViewedAt = &first
	}
	last := now
	app.LastViewedAt = &last

	for _, v := range app.ViewedBy {
		if v.UserID == viewer {
			return
		}
	}
	app.ViewedBy = append(app.ViewedBy, types.ViewRecord{UserID: viewer, ViewedAt: now})
}

// appendEvent records one of the automatic side-effect facts that accompany a
// status change.
func appendEvent(app *types.Application, action string, actor uuid.UUID, now time.Time, status types.Status) {
	app.Timeline = append(app.Timeline, types.TimelineEntry{
		Action:      action,
		PerformedBy: actor,
		Timestamp:   now,
		NewStatus:   status,
	})
}
