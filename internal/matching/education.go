package matching

import (
	"strings"

	"github.com/jonathan/hireflow/internal/types"
)

// degreeRank maps degree keywords to comparable ranks. Candidate degree
// strings are free text, so a record's rank is the highest keyword found in
// it by case-insensitive substring match; unrecognized degrees rank 0.
var degreeRank = map[string]int{
	"high school": 1,
	"diploma":     2,
	"associate":   3,
	"bachelor":    4,
	"master":      5,
	"phd":         6,
	"doctorate":   6,
}

// requirementRank maps a job's education requirement enum onto the same
// hierarchy. DegreeNone (and the zero value) rank 0, meaning the criterion is
// not evaluable.
var requirementRank = map[types.DegreeLevel]int{
	types.DegreeHighSchool: 1,
	types.DegreeAssociate:  3,
	types.DegreeBachelor:   4,
	types.DegreeMaster:     5,
	types.DegreeDoctorate:  6,
}

// rankDegree returns the hierarchy rank for a free-text degree name.
func rankDegree(degree string) int {
	lower := strings.ToLower(degree)
	rank := 0
	for keyword, r := range degreeRank {
		if strings.Contains(lower, keyword) && r > rank {
			rank = r
		}
	}
	return rank
}

// highestDegreeRank returns the best rank among a candidate's education
// records.
func highestDegreeRank(records []types.EducationRecord) int {
	rank := 0
	for _, rec := range records {
		if r := rankDegree(rec.Degree); r > rank {
			rank = r
		}
	}
	return rank
}

// educationSatisfied reports whether the candidate's highest-ranked degree
// meets or exceeds the job's requirement.
func educationSatisfied(records []types.EducationRecord, requirement types.DegreeLevel) bool {
	required := requirementRank[requirement]
	if required == 0 {
		return false
	}
	return highestDegreeRank(records) >= required
}
