package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hireflow/internal/matching"
	"github.com/jonathan/hireflow/internal/observability"
	"github.com/jonathan/hireflow/internal/schemas"
	"github.com/jonathan/hireflow/internal/types"
)

var (
	scoreCandidate    string
	scoreJob          string
	scoreDir          string
	scoreProfile      string
	scoreProfilesPath string
	scoreVerbose      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score candidate fit against a job's requirements",
	Long: `Score one candidate profile (or a directory of profiles) against a job's
requirements under a named weighting profile. Inputs are JSON documents
validated against the repository schemas.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreCandidate, "candidate", "", "Path to candidate profile JSON")
	scoreCmd.Flags().StringVar(&scoreDir, "dir", "", "Directory of candidate profile JSON files to score concurrently")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to job requirements JSON")
	scoreCmd.Flags().StringVar(&scoreProfile, "profile", matching.ProfileEmployerView.Name, "Weighting profile name")
	scoreCmd.Flags().StringVar(&scoreProfilesPath, "profiles", "", "Path to custom weighting profiles YAML")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a formatted breakdown")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if (scoreCandidate == "") == (scoreDir == "") {
		return fmt.Errorf("exactly one of --candidate or --dir is required")
	}

	profile, err := matching.ResolveProfile(scoreProfile, scoreProfilesPath)
	if err != nil {
		return err
	}

	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}

	if scoreDir != "" {
		return scoreDirectory(scoreDir, job, profile)
	}

	candidate, err := loadCandidate(scoreCandidate)
	if err != nil {
		return err
	}

	result := matching.ComputeMatch(candidate, job, profile)
	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result, profile)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// scoreDirectory scores every candidate file in dir against the job, in
// parallel, and prints a ranking.
func scoreDirectory(dir string, job types.JobRequirements, profile matching.WeightingProfile) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list candidate files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no candidate files found in %s", dir)
	}

	type scored struct {
		path   string
		result types.MatchResult
	}
	results := make([]scored, len(paths))

	var g errgroup.Group
	g.SetLimit(4)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			candidate, err := loadCandidate(path)
			if err != nil {
				return err
			}
			results[i] = scored{path: path, result: matching.ComputeMatch(candidate, job, profile)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].result.Score > results[j].result.Score
	})

	fmt.Printf("%-40s %8s %8s\n", "CANDIDATE", "SCORE", "SKILLS")
	for _, r := range results {
		fmt.Printf("%-40s %8d %8d\n", filepath.Base(r.path), r.result.Score, r.result.SkillsMatch)
	}
	return nil
}

// loadCandidate reads, schema-validates, and sanitizes a candidate profile
// document.
func loadCandidate(path string) (types.CandidateProfile, error) {
	var candidate types.CandidateProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return candidate, fmt.Errorf("failed to read candidate file: %w", err)
	}
	if schemaPath := schemas.ResolveSchemaPath(schemas.CandidateProfileSchema); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return candidate, fmt.Errorf("candidate %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, &candidate); err != nil {
		return candidate, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	return candidate.Sanitized(), nil
}

// loadJob reads, schema-validates, and sanitizes a job requirements document.
func loadJob(path string) (types.JobRequirements, error) {
	var job types.JobRequirements
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read job file: %w", err)
	}
	if schemaPath := schemas.ResolveSchemaPath(schemas.JobRequirementsSchema); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			return job, fmt.Errorf("job %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return job.Sanitized(), nil
}
