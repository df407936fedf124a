package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireflow/internal/matching"
	"github.com/jonathan/hireflow/internal/schemas"
)

func writeJSONFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCandidateJSON = `{
	"skills": [
		{"name": "Go", "proficiency": "advanced", "years_of_experience": 4},
		{"name": "PostgreSQL", "years_of_experience": 3}
	],
	"total_experience_years": 6,
	"education_records": [{"degree": "Bachelor of Science", "field_of_study": "CS"}],
	"preferred_locations": ["Austin, TX"],
	"preferred_employment_types": ["full_time"]
}`

const validJobJSON = `{
	"required_skills": ["Go", "Kubernetes"],
	"minimum_experience_years": 3,
	"education_requirement": "bachelor",
	"location": "Austin",
	"employment_type": "full_time"
}`

func TestLoadCandidate_Valid(t *testing.T) {
	path := writeJSONFile(t, t.TempDir(), "candidate.json", validCandidateJSON)

	candidate, err := loadCandidate(path)

	require.NoError(t, err)
	require.Len(t, candidate.Skills, 2)
	assert.Equal(t, "Go", candidate.Skills[0].Name)
	assert.Equal(t, 6.0, candidate.TotalExperienceYears)
}

func TestLoadCandidate_MissingFile(t *testing.T) {
	_, err := loadCandidate(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestLoadCandidate_MalformedJSON(t *testing.T) {
	path := writeJSONFile(t, t.TempDir(), "candidate.json", `{"skills": [`)

	_, err := loadCandidate(path)

	assert.Error(t, err)
}

func TestLoadCandidate_SchemaViolation(t *testing.T) {
	// Schemas resolve from cmd/hireflow via the ../.. fallback, so documents
	// breaking the schema are rejected before JSON decoding.
	require.NotEmpty(t, schemas.ResolveSchemaPath(schemas.CandidateProfileSchema))

	path := writeJSONFile(t, t.TempDir(), "candidate.json", `{"skills": ["Go", "SQL"]}`)

	_, err := loadCandidate(path)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadCandidate_Sanitizes(t *testing.T) {
	doc := `{
		"skills": [{"name": "  "}, {"name": "Go"}],
		"total_experience_years": -2
	}`
	path := writeJSONFile(t, t.TempDir(), "candidate.json", doc)

	candidate, err := loadCandidate(path)

	require.NoError(t, err)
	require.Len(t, candidate.Skills, 1)
	assert.Equal(t, "Go", candidate.Skills[0].Name)
	assert.Equal(t, 0.0, candidate.TotalExperienceYears)
}

func TestLoadJob_Valid(t *testing.T) {
	path := writeJSONFile(t, t.TempDir(), "job.json", validJobJSON)

	job, err := loadJob(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, job.RequiredSkills)
	require.NotNil(t, job.MinimumExperienceYears)
	assert.Equal(t, 3.0, *job.MinimumExperienceYears)
}

func TestLoadJob_UnknownEducationRequirement(t *testing.T) {
	path := writeJSONFile(t, t.TempDir(), "job.json", `{"education_requirement": "postdoc"}`)

	_, err := loadJob(path)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadedDocumentsScoreEndToEnd(t *testing.T) {
	dir := t.TempDir()
	candidatePath := writeJSONFile(t, dir, "candidate.json", validCandidateJSON)
	jobPath := writeJSONFile(t, dir, "job.json", validJobJSON)

	candidate, err := loadCandidate(candidatePath)
	require.NoError(t, err)
	job, err := loadJob(jobPath)
	require.NoError(t, err)

	result := matching.ComputeMatch(candidate, job, matching.ProfileEmployerView)

	assert.Equal(t, 50, result.SkillsMatch)
	assert.Greater(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}
