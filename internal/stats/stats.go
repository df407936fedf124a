// Package stats derives read-model summaries from collections of application
// records. Everything here is a pure fold over its input; nothing is mutated
// and nothing here is a source of truth.
package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hireflow/internal/types"
)

// trailingWindowDays is the span of the day-bucketed submission series.
const trailingWindowDays = 30

// Filters narrows the application set before aggregation. Zero values mean
// "no filter". A range with Since after Until is malformed and yields an
// empty summary rather than an error.
type Filters struct {
	EmployerID uuid.UUID
	JobID      uuid.UUID
	Since      time.Time
	Until      time.Time
}

// StatusGroup summarizes the applications sharing one status.
type StatusGroup struct {
	Count          int     `json:"count"`
	AvgScore       float64 `json:"avg_score"`
	AvgSkillsMatch float64 `json:"avg_skills_match"`
}

// Summary is the aggregated dashboard view of a set of applications. Daily is
// keyed by calendar date ("2006-01-02") over the trailing window.
type Summary struct {
	Total    int                          `json:"total"`
	Viewed   int                          `json:"viewed"`
	ViewRate float64                      `json:"view_rate"`
	ByStatus map[types.Status]StatusGroup `json:"by_status"`
	Daily    map[string]int               `json:"daily"`
}

// Summarize folds a collection of applications into a Summary. An empty
// collection produces zero counts and a zero view rate, never NaN.
func Summarize(apps []types.Application, f Filters) Summary {
	return summarizeAt(apps, f, time.Now().UTC())
}

func summarizeAt(apps []types.Application, f Filters, now time.Time) Summary {
	summary := Summary{
		ByStatus: make(map[types.Status]StatusGroup),
		Daily:    make(map[string]int),
	}
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Since.After(f.Until) {
		return summary
	}

	windowStart := now.AddDate(0, 0, -trailingWindowDays)
	for i := range apps {
		app := &apps[i]
		if !matchesFilters(app, f) {
			continue
		}

		summary.Total++

		group := summary.ByStatus[app.Status]
		group.AvgScore = IncrementalAverage(group.AvgScore, group.Count, float64(app.Score))
		group.AvgSkillsMatch = IncrementalAverage(group.AvgSkillsMatch, group.Count, float64(app.SkillsMatch))
		group.Count++
		summary.ByStatus[app.Status] = group

		if app.ViewedAt != nil {
			summary.Viewed++
		}
		if !app.SubmittedAt.Before(windowStart) && !app.SubmittedAt.After(now) {
			summary.Daily[app.SubmittedAt.UTC().Format("2006-01-02")]++
		}
	}

	if summary.Total > 0 {
		summary.ViewRate = float64(summary.Viewed) / float64(summary.Total)
	}
	return summary
}

// IncrementalAverage folds one more observation into a running mean over n
// prior observations: avg' = avg + (x - avg) / (n + 1). With n <= 0 the
// observation becomes the mean.
func IncrementalAverage(avg float64, n int, x float64) float64 {
	if n <= 0 {
		return x
	}
	return avg + (x-avg)/float64(n+1)
}

func matchesFilters(app *types.Application, f Filters) bool {
	if f.EmployerID != uuid.Nil && app.EmployerID != f.EmployerID {
		return false
	}
	if f.JobID != uuid.Nil && app.JobID != f.JobID {
		return false
	}
	if !f.Since.IsZero() && app.SubmittedAt.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && app.SubmittedAt.After(f.Until) {
		return false
	}
	return true
}
