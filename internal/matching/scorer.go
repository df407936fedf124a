package matching

import (
	"math"
	"strings"

	"github.com/jonathan/hireflow/internal/types"
)

// ComputeMatch scores a candidate profile against a job's requirements under
// the given weighting profile. It is pure and deterministic: malformed input
// degrades to "criterion not evaluable" instead of failing.
//
// Each criterion that can be evaluated contributes between zero and its full
// weight to the numerator and its full weight to the denominator; criteria
// that cannot be evaluated (required data absent on either side) are left out
// of both, so the final score stays on a 0-100 scale regardless of how much
// data was available. When nothing is evaluable the score is zero.
func ComputeMatch(candidate types.CandidateProfile, job types.JobRequirements, profile WeightingProfile) types.MatchResult {
	candidate = candidate.Sanitized()
	job = job.Sanitized()

	var breakdown types.MatchBreakdown
	awarded := 0.0
	evaluable := 0.0
	skillsMatch := 0

	if len(job.RequiredSkills) > 0 && len(candidate.Skills) > 0 {
		ratio := skillsOverlapRatio(candidate.Skills, job.RequiredSkills)
		skillsMatch = int(math.Round(ratio * 100))
		if profile.Skills > 0 {
			breakdown.Skills = ratio * profile.Skills
			awarded += breakdown.Skills
			evaluable += profile.Skills
		}
	}

	if profile.Experience > 0 && job.MinimumExperienceYears != nil && *job.MinimumExperienceYears > 0 {
		breakdown.Experience = experienceAward(candidate.TotalExperienceYears, *job.MinimumExperienceYears, profile.Experience)
		awarded += breakdown.Experience
		evaluable += profile.Experience
	}

	if profile.Location > 0 && job.Location != "" && len(candidate.PreferredLocations) > 0 {
		if locationsMatch(job.Location, candidate.PreferredLocations[0]) {
			breakdown.Location = profile.Location
			awarded += profile.Location
		}
		evaluable += profile.Location
	}

	if profile.EmploymentType > 0 && job.EmploymentType != "" && len(candidate.PreferredEmploymentTypes) > 0 {
		if employmentTypeMatch(job.EmploymentType, candidate.PreferredEmploymentTypes) {
			breakdown.EmploymentType = profile.EmploymentType
			awarded += profile.EmploymentType
		}
		evaluable += profile.EmploymentType
	}

	if profile.Education > 0 && requirementRank[job.EducationRequirement] > 0 && len(candidate.EducationRecords) > 0 {
		if educationSatisfied(candidate.EducationRecords, job.EducationRequirement) {
			breakdown.Education = profile.Education
			awarded += profile.Education
		}
		evaluable += profile.Education
	}

	score := 0
	if evaluable > 0 {
		score = int(math.Round(awarded / evaluable * 100))
	}

	return types.MatchResult{
		Score:       score,
		SkillsMatch: skillsMatch,
		Breakdown:   breakdown,
	}
}

// skillsOverlapRatio returns the fraction of job-required skills matched by at
// least one candidate skill.
func skillsOverlapRatio(skills []types.CandidateSkill, required []string) float64 {
	matched := 0
	for _, req := range required {
		for _, s := range skills {
			if skillNamesMatch(req, s.Name) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(required))
}

// skillNamesMatch reports whether one skill name is a case-insensitive
// substring of the other, so "Python" matches "python3" and vice versa.
func skillNamesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// experienceAward scales linearly up to the full weight at or above the
// required years; it never exceeds the weight and never goes negative.
func experienceAward(years, required, weight float64) float64 {
	if years <= 0 {
		return 0
	}
	award := years / required * weight
	if award > weight {
		award = weight
	}
	return award
}

// locationsMatch applies a lenient case-insensitive substring match in either
// direction, so a job in "Austin" matches a preference for "Austin, TX".
func locationsMatch(jobLocation, preferred string) bool {
	j := strings.ToLower(strings.TrimSpace(jobLocation))
	p := strings.ToLower(strings.TrimSpace(preferred))
	if j == "" || p == "" {
		return false
	}
	return strings.Contains(j, p) || strings.Contains(p, j)
}

// employmentTypeMatch is an exact membership check, unlike the lenient string
// criteria: employment types are enums on both sides.
func employmentTypeMatch(jobType types.EmploymentType, preferred []types.EmploymentType) bool {
	for _, t := range preferred {
		if t == jobType {
			return true
		}
	}
	return false
}
