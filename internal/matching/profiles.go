// Package matching computes weighted fit scores between candidate profiles and
// job requirements.
package matching

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WeightingProfile is a named set of per-criterion percentage weights. A zero
// weight removes the criterion from scoring entirely.
type WeightingProfile struct {
	Name           string  `yaml:"name" json:"name"`
	Skills         float64 `yaml:"skills" json:"skills"`
	Experience     float64 `yaml:"experience" json:"experience"`
	Location       float64 `yaml:"location" json:"location"`
	EmploymentType float64 `yaml:"employment_type" json:"employment_type"`
	Education      float64 `yaml:"education" json:"education"`
}

// ProfileEmployerView is the weighting used when an employer reviews incoming
// applications. Employment type is irrelevant from this side, so its share
// goes to education.
var ProfileEmployerView = WeightingProfile{
	Name:       "employer_view",
	Skills:     40,
	Experience: 30,
	Location:   15,
	Education:  15,
}

// ProfileCandidateView is the weighting used when jobs are scored for a
// candidate's own browsing, where their preferred work arrangement matters.
var ProfileCandidateView = WeightingProfile{
	Name:           "candidate_view",
	Skills:         40,
	Experience:     30,
	Location:       15,
	EmploymentType: 10,
	Education:      5,
}

// BuiltinProfiles returns the weighting profiles shipped with the engine.
func BuiltinProfiles() []WeightingProfile {
	return []WeightingProfile{ProfileEmployerView, ProfileCandidateView}
}

// Validate checks that the profile is usable: it must be named, weights must
// be non-negative, and at least one criterion must carry weight.
func (p WeightingProfile) Validate() error {
	if p.Name == "" {
		return &ProfileError{Message: "profile name is required"}
	}
	total := 0.0
	for _, w := range []float64{p.Skills, p.Experience, p.Location, p.EmploymentType, p.Education} {
		if w < 0 {
			return &ProfileError{Profile: p.Name, Message: "criterion weights must be non-negative"}
		}
		total += w
	}
	if total == 0 {
		return &ProfileError{Profile: p.Name, Message: "at least one criterion must have a positive weight"}
	}
	return nil
}

type profilesFile struct {
	Profiles []WeightingProfile `yaml:"profiles"`
}

// LoadProfiles reads custom weighting profiles from a YAML file and returns
// them keyed by name. Every profile must validate; duplicate names are
// rejected.
func LoadProfiles(path string) (map[string]WeightingProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileError{Message: "failed to read profiles file", Cause: err}
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ProfileError{Message: "failed to parse profiles YAML", Cause: err}
	}

	profiles := make(map[string]WeightingProfile, len(file.Profiles))
	for _, p := range file.Profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := profiles[p.Name]; exists {
			return nil, &ProfileError{Profile: p.Name, Message: "duplicate profile name"}
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

// ResolveProfile looks up a weighting profile by name, first among the
// built-ins, then in the optional custom profiles file. Custom profiles may
// shadow built-in names.
func ResolveProfile(name, profilesPath string) (WeightingProfile, error) {
	if profilesPath != "" {
		custom, err := LoadProfiles(profilesPath)
		if err != nil {
			return WeightingProfile{}, err
		}
		if p, ok := custom[name]; ok {
			return p, nil
		}
	}
	for _, p := range BuiltinProfiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return WeightingProfile{}, &UnknownProfileError{Name: name}
}
