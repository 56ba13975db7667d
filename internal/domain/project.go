package domain

import (
	"fmt"
	"regexp"
)

var catalogIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// Project is a recommended learning exercise. Projects come from the catalog
// and are never edited by the learner.
type Project struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Duration    Duration        `json:"duration" yaml:"duration"`
	Difficulty  ExperienceLevel `json:"difficulty" yaml:"difficulty"`
}

// ValidateCatalogID checks that id is non-empty and limited to letters,
// digits, dashes and underscores (e.g. "1", "react-basics").
func ValidateCatalogID(id string) error {
	if id == "" {
		return fmt.Errorf("catalog id is required")
	}
	if !catalogIDPattern.MatchString(id) {
		return fmt.Errorf("catalog id %q must be 1-64 letters, digits, '-' or '_'", id)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// Long generated IDs are truncated to 8 characters.
func DisplayID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
