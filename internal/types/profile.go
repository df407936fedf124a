// Package types provides type definitions for the candidate, job, and application
// records shared across the hireflow matching and lifecycle packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// EmploymentType identifies a work arrangement on a job posting or in a
// candidate's preferences.
type EmploymentType string

// Employment types recognized by the marketplace.
const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

var knownEmploymentTypes = map[EmploymentType]bool{
	EmploymentFullTime:   true,
	EmploymentPartTime:   true,
	EmploymentContract:   true,
	EmploymentInternship: true,
	EmploymentTemporary:  true,
}

// CandidateSkill is a single skill entry on a candidate profile
type CandidateSkill struct {
	Name              string  `json:"name"`
	Proficiency       string  `json:"proficiency,omitempty"`
	YearsOfExperience float64 `json:"years_of_experience,omitempty"`
}

// EducationRecord is a single degree entry on a candidate profile
type EducationRecord struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// CandidateProfile holds the candidate attributes consumed by match scoring.
// The profile-management collaborator owns and mutates these records; scoring
// treats them as read-only input.
type CandidateProfile struct {
	ID                       uuid.UUID        `json:"id,omitempty"`
	Skills                   []CandidateSkill `json:"skills,omitempty"`
	TotalExperienceYears     float64          `json:"total_experience_years,omitempty"`
	EducationRecords         []EducationRecord `json:"education_records,omitempty"`
	PreferredLocations       []string         `json:"preferred_locations,omitempty"`
	PreferredEmploymentTypes []EmploymentType `json:"preferred_employment_types,omitempty"`
}

// Sanitized returns a copy of the profile with malformed entries normalized:
// blank skill names and degree strings are dropped, negative year counts are
// clamped to zero, and unknown employment types are removed. Malformed data
// degrades to "absent" rather than failing the caller.
func (p CandidateProfile) Sanitized() CandidateProfile {
	out := CandidateProfile{
		ID:                   p.ID,
		TotalExperienceYears: p.TotalExperienceYears,
	}
	if out.TotalExperienceYears < 0 {
		out.TotalExperienceYears = 0
	}

	for _, s := range p.Skills {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		if s.YearsOfExperience < 0 {
			s.YearsOfExperience = 0
		}
		out.Skills = append(out.Skills, s)
	}

	for _, e := range p.EducationRecords {
		e.Degree = strings.TrimSpace(e.Degree)
		if e.Degree == "" {
			continue
		}
		out.EducationRecords = append(out.EducationRecords, e)
	}

	for _, l := range p.PreferredLocations {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out.PreferredLocations = append(out.PreferredLocations, l)
	}

	for _, t := range p.PreferredEmploymentTypes {
		if knownEmploymentTypes[t] {
			out.PreferredEmploymentTypes = append(out.PreferredEmploymentTypes, t)
		}
	}

	return out
}
