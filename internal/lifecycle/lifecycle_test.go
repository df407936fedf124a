package lifecycle

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/types"
)

func newSubmission() types.SubmissionContext {
	return types.SubmissionContext{
		JobID:       uuid.New(),
		EmployerID:  uuid.New(),
		ApplicantID: uuid.New(),
		ResumeRef:   "resumes/abc123.pdf",
		Answers:     map[string]string{"why": "because"},
	}
}

func newApplication(t *testing.T) *types.Application {
	t.Helper()
	app, err := Create(newSubmission())
	require.NoError(t, err)
	return app
}

func TestCreate_StartsPendingWithAppliedEntry(t *testing.T) {
	sub := newSubmission()

	app, err := Create(sub)

	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, app.Status)
	assert.Equal(t, sub.JobID, app.JobID)
	assert.Equal(t, sub.ApplicantID, app.ApplicantID)
	require.Len(t, app.Timeline, 1)
	assert.Equal(t, types.ActionApplied, app.Timeline[0].Action)
	assert.Equal(t, sub.ApplicantID, app.Timeline[0].PerformedBy)
	assert.Equal(t, types.StatusPending, app.Timeline[0].NewStatus)
}

func TestCreate_MissingResumeRef(t *testing.T) {
	sub := newSubmission()
	sub.ResumeRef = ""

	_, err := Create(sub)

	assert.Error(t, err)
}

func TestCreate_MissingApplicant(t *testing.T) {
	sub := newSubmission()
	sub.ApplicantID = uuid.Nil

	_, err := Create(sub)

	assert.Error(t, err)
}

func TestSetStatus_ToInterviewAppendsTwoEntries(t *testing.T) {
	app := newApplication(t)
	actor := uuid.New()

	entry, err := SetStatus(app, types.StatusInterview, actor, "phone screen passed")

	require.NoError(t, err)
	assert.Equal(t, types.StatusInterview, app.Status)
	require.Len(t, app.Timeline, 3)
	assert.Equal(t, types.ActionApplied, app.Timeline[0].Action)
	assert.Equal(t, types.ActionStatusUpdated, app.Timeline[1].Action)
	assert.Equal(t, types.ActionInterviewScheduled, app.Timeline[2].Action)
	assert.Equal(t, types.StatusPending, entry.PreviousStatus)
	assert.Equal(t, types.StatusInterview, entry.NewStatus)
	assert.Equal(t, "phone screen passed", entry.Notes)
}

func TestSetStatus_FromTerminalFailsWithoutMutation(t *testing.T) {
	app := newApplication(t)
	actor := uuid.New()
	_, err := SetStatus(app, types.StatusAccepted, actor, "")
	require.NoError(t, err)

	timelineLen := len(app.Timeline)
	updatedAt := app.UpdatedAt

	_, err = SetStatus(app, types.StatusReviewed, actor, "")

	var invalidErr *ErrInvalidTransition
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, types.StatusAccepted, invalidErr.From)
	assert.Equal(t, types.StatusAccepted, app.Status)
	assert.Len(t, app.Timeline, timelineLen)
	assert.Equal(t, updatedAt, app.UpdatedAt)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	app := newApplication(t)

	_, err := SetStatus(app, types.Status("archived"), uuid.New(), "")

	var invalidErr *ErrInvalidTransition
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, types.StatusPending, app.Status)
	assert.Len(t, app.Timeline, 1)
}

func TestSetStatus_BackwardTransitionRejected(t *testing.T) {
	app := newApplication(t)
	_, err := SetStatus(app, types.StatusShortlisted, uuid.New(), "")
	require.NoError(t, err)

	_, err = SetStatus(app, types.StatusReviewed, uuid.New(), "")

	assert.Error(t, err)
	assert.Equal(t, types.StatusShortlisted, app.Status)
}

func TestSetStatus_ToReviewedStampsFirstView(t *testing.T) {
	app := newApplication(t)
	reviewer := uuid.New()

	_, err := SetStatus(app, types.StatusReviewed, reviewer, "")

	require.NoError(t, err)
	require.NotNil(t, app.ViewedAt)
	require.NotNil(t, app.LastViewedAt)
	require.Len(t, app.ViewedBy, 1)
	assert.Equal(t, reviewer, app.ViewedBy[0].UserID)
	// reviewed itself adds no extra timeline entry beyond status_updated
	assert.Len(t, app.Timeline, 2)
}

func TestSetStatus_ToAcceptedAppendsAcceptedEntry(t *testing.T) {
	app := newApplication(t)

	_, err := SetStatus(app, types.StatusAccepted, uuid.New(), "")

	require.NoError(t, err)
	require.Len(t, app.Timeline, 3)
	assert.Equal(t, types.ActionAccepted, app.Timeline[2].Action)
}

func TestReject_StoresReasonOutsideTimeline(t *testing.T) {
	app := newApplication(t)

	entry, err := Reject(app, uuid.New(), "position filled")

	require.NoError(t, err)
	assert.Equal(t, types.StatusRejected, app.Status)
	assert.Equal(t, "position filled", app.RejectionReason)
	assert.Equal(t, types.ActionStatusUpdated, entry.Action)
	require.Len(t, app.Timeline, 3)
	assert.Equal(t, types.ActionRejected, app.Timeline[2].Action)
	for _, e := range app.Timeline {
		assert.NotContains(t, e.Notes, "position filled")
	}
}

func TestReject_FromTerminalLeavesReasonUnset(t *testing.T) {
	app := newApplication(t)
	require.NoError(t, Withdraw(app, app.ApplicantID))

	_, err := Reject(app, uuid.New(), "too late")

	assert.Error(t, err)
	assert.Empty(t, app.RejectionReason)
}

func TestMarkViewed_FirstViewSetsViewedAt(t *testing.T) {
	app := newApplication(t)
	viewer := uuid.New()

	MarkViewed(app, viewer)

	require.NotNil(t, app.ViewedAt)
	require.NotNil(t, app.LastViewedAt)
	require.Len(t, app.ViewedBy, 1)
	assert.Equal(t, viewer, app.ViewedBy[0].UserID)
}

func TestMarkViewed_IdempotentPerUser(t *testing.T) {
	app := newApplication(t)
	viewer := uuid.New()

	MarkViewed(app, viewer)
	firstViewedAt := *app.ViewedAt

	MarkViewed(app, viewer)

	assert.Equal(t, firstViewedAt, *app.ViewedAt)
	require.Len(t, app.ViewedBy, 1)
	assert.False(t, app.LastViewedAt.Before(firstViewedAt))
}

func TestMarkViewed_DistinctUsersAccumulate(t *testing.T) {
	app := newApplication(t)

	MarkViewed(app, uuid.New())
	MarkViewed(app, uuid.New())

	assert.Len(t, app.ViewedBy, 2)
}

func TestMarkViewed_AutoTransitionsPendingToReviewed(t *testing.T) {
	app := newApplication(t)

	MarkViewed(app, uuid.New())

	assert.Equal(t, types.StatusReviewed, app.Status)
	require.Len(t, app.Timeline, 2)
	assert.Equal(t, types.ActionStatusUpdated, app.Timeline[1].Action)
	assert.Equal(t, types.StatusPending, app.Timeline[1].PreviousStatus)
	assert.Equal(t, types.StatusReviewed, app.Timeline[1].NewStatus)
}

func TestMarkViewed_NoStatusChangeWhenNotPending(t *testing.T) {
	app := newApplication(t)
	_, err := SetStatus(app, types.StatusShortlisted, uuid.New(), "")
	require.NoError(t, err)
	timelineLen := len(app.Timeline)

	MarkViewed(app, uuid.New())

	assert.Equal(t, types.StatusShortlisted, app.Status)
	assert.Len(t, app.Timeline, timelineLen)
}

func TestAddNote_AppendsNoteAndTimelineEntry(t *testing.T) {
	app := newApplication(t)
	author := uuid.New()

	note, err := AddNote(app, "strong portfolio", author)

	require.NoError(t, err)
	assert.Equal(t, "strong portfolio", note.Text)
	require.Len(t, app.Notes, 1)
	require.Len(t, app.Timeline, 2)
	assert.Equal(t, types.ActionNoteAdded, app.Timeline[1].Action)
	assert.Equal(t, types.StatusPending, app.Status)
}

func TestAddNote_EmptyText(t *testing.T) {
	app := newApplication(t)

	_, err := AddNote(app, "   ", uuid.New())

	var validationErr *ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, app.Notes)
	assert.Len(t, app.Timeline, 1)
}

func TestAddCommunication_AppendsLogAndTimelineEntry(t *testing.T) {
	app := newApplication(t)
	author := uuid.New()

	comm, err := AddCommunication(app, "email", "Interview invite", "Hi there", author)

	require.NoError(t, err)
	assert.Equal(t, "email", comm.Type)
	require.Len(t, app.Communications, 1)
	require.Len(t, app.Timeline, 2)
	assert.Equal(t, types.ActionCommunicationSent, app.Timeline[1].Action)
	assert.Equal(t, types.StatusPending, app.Status)
}

func TestAddCommunication_MissingType(t *testing.T) {
	app := newApplication(t)

	_, err := AddCommunication(app, "", "Subject", "Body", uuid.New())

	assert.Error(t, err)
	assert.Empty(t, app.Communications)
}

func TestWithdraw_ByApplicant(t *testing.T) {
	app := newApplication(t)

	err := Withdraw(app, app.ApplicantID)

	require.NoError(t, err)
	assert.Equal(t, types.StatusWithdrawn, app.Status)
	require.Len(t, app.Timeline, 2)
	assert.Equal(t, types.ActionWithdrawn, app.Timeline[1].Action)
	require.Len(t, app.Notes, 1)
	assert.Contains(t, app.Notes[0].Text, "withdrawn")
}

func TestWithdraw_ByStrangerFailsWithoutMutation(t *testing.T) {
	app := newApplication(t)

	err := Withdraw(app, uuid.New())

	var forbiddenErr *ErrForbidden
	require.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, types.StatusPending, app.Status)
	assert.Len(t, app.Timeline, 1)
	assert.Empty(t, app.Notes)
}

func TestWithdraw_FromInterview(t *testing.T) {
	app := newApplication(t)
	_, err := SetStatus(app, types.StatusInterview, uuid.New(), "")
	require.NoError(t, err)

	err = Withdraw(app, app.ApplicantID)

	require.NoError(t, err)
	assert.Equal(t, types.StatusWithdrawn, app.Status)
}

func TestWithdraw_FromTerminal(t *testing.T) {
	app := newApplication(t)
	_, err := SetStatus(app, types.StatusRejected, uuid.New(), "")
	require.NoError(t, err)

	err = Withdraw(app, app.ApplicantID)

	var invalidErr *ErrInvalidTransition
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, types.StatusRejected, app.Status)
}
