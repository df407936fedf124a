// Package types provides type definitions for the candidate, job, and application
// records shared across the hireflow matching and lifecycle packages.
package types

import (
	"strings"

	"github.com/google/uuid"
)

// DegreeLevel is the minimum education a job posting may require.
type DegreeLevel string

// Degree levels a job posting can require, lowest to highest.
const (
	DegreeNone       DegreeLevel = "none"
	DegreeHighSchool DegreeLevel = "high_school"
	DegreeAssociate  DegreeLevel = "associate"
	DegreeBachelor   DegreeLevel = "bachelor"
	DegreeMaster     DegreeLevel = "master"
	DegreeDoctorate  DegreeLevel = "doctorate"
)

// JobRequirements holds the job-side attributes consumed by match scoring.
// Owned by the job-posting collaborator; scoring treats it as read-only input.
type JobRequirements struct {
	ID                     uuid.UUID      `json:"id,omitempty"`
	EmployerID             uuid.UUID      `json:"employer_id,omitempty"`
	RequiredSkills         []string       `json:"required_skills,omitempty"`
	MinimumExperienceYears *float64       `json:"minimum_experience_years,omitempty"`
	EducationRequirement   DegreeLevel    `json:"education_requirement,omitempty"`
	Location               string         `json:"location,omitempty"`
	EmploymentType         EmploymentType `json:"employment_type,omitempty"`
}

// Sanitized returns a copy with malformed entries normalized: blank required
// skills are dropped and a negative minimum-years value is treated as if the
// job had no experience requirement at all.
func (j JobRequirements) Sanitized() JobRequirements {
	out := j
	out.RequiredSkills = nil
	for _, s := range j.RequiredSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out.RequiredSkills = append(out.RequiredSkills, s)
	}
	out.Location = strings.TrimSpace(j.Location)
	if j.MinimumExperienceYears != nil && *j.MinimumExperienceYears < 0 {
		out.MinimumExperienceYears = nil
	}
	return out
}
