package matching

import "fmt"

// ProfileError represents an invalid or unreadable weighting profile
type ProfileError struct {
	Profile string
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	msg := e.Message
	if e.Profile != "" {
		msg = fmt.Sprintf("profile %q: %s", e.Profile, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}

// UnknownProfileError indicates a weighting profile name that is neither a
// built-in nor present in the custom profiles file
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown weighting profile: %s", e.Name)
}
