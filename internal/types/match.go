// Package types provides type definitions for the candidate, job, and application
// records shared across the hireflow matching and lifecycle packages.
package types

// MatchBreakdown lists the points awarded per criterion on the weighting
// profile's own scale. A criterion that could not be evaluated stays at zero.
type MatchBreakdown struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Location       float64 `json:"location"`
	EmploymentType float64 `json:"employment_type,omitempty"`
}

// MatchResult is the outcome of scoring one candidate against one job. Score
// and SkillsMatch are both expressed on a 0-100 scale; SkillsMatch reflects
// only the skills criterion, independent of the weighting profile. The caller
// decides whether and how to persist the result onto an Application.
type MatchResult struct {
	Score       int            `json:"score"`
	SkillsMatch int            `json:"skills_match"`
	Breakdown   MatchBreakdown `json:"breakdown"`
}
