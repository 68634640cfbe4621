package catalog

import (
	"fmt"
	"strings"
)

// validateFile performs the structural checks the JSON schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateFile(f File) error {
	var errs []string

	if len(f.Courses) == 0 {
		errs = append(errs, "catalog has no courses")
	}

	courseIDs := make(map[string]bool, len(f.Courses))
	for _, c := range f.Courses {
		if courseIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", c.ID))
		}
		courseIDs[c.ID] = true

		if !knownTrack(c.Track) {
			errs = append(errs, fmt.Sprintf("course %q has unknown track %q", c.ID, c.Track))
		}

		lessonIDs := make(map[string]bool, len(c.Lessons))
		for _, l := range c.Lessons {
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("course %q: duplicate lesson ID: %q", c.ID, l.ID))
			}
			lessonIDs[l.ID] = true

			for i, q := range l.Quiz {
				prefix := fmt.Sprintf("course %q lesson %q question %d", c.ID, l.ID, i)
				if len(q.Options) < 2 {
					errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
				}
				if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
					errs = append(errs, fmt.Sprintf("%s: correctAnswer %d out of range [0, %d)", prefix, q.CorrectAnswer, len(q.Options)))
				}
			}

			if l.Exercise != nil && strings.TrimSpace(l.Exercise.Solution) == "" {
				errs = append(errs, fmt.Sprintf("course %q lesson %q: exercise has no solution", c.ID, l.ID))
			}
		}
	}

	resourceIDs := make(map[string]bool, len(f.Resources))
	for _, r := range f.Resources {
		if resourceIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate resource ID: %q", r.ID))
		}
		resourceIDs[r.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func knownTrack(t Track) bool {
	for _, known := range AllTracks() {
		if t == known {
			return true
		}
	}
	return false
}
