package catalog

import "strings"

// Exercise is a single ExerciseDB record. Records are treated as immutable
// values; result sets are always replaced, never patched.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Target           string   `json:"target"`
	BodyPart         string   `json:"bodyPart"`
	Equipment        string   `json:"equipment"`
	MediaURL         string   `json:"gifUrl"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
}

// SearchText returns the lowercased text matched by free-text search.
func (e Exercise) SearchText() string {
	return strings.ToLower(strings.Join([]string{e.Name, e.Target, e.Equipment, e.BodyPart}, " "))
}

// Description is the short blurb shown on the detail screen.
func (e Exercise) Description() string {
	return "Exercises keep you strong. " + e.Name +
		" is one of the best exercises to target your " + e.Target +
		". It will help you improve your mood and gain energy."
}

// VideoQuery is the video search used for "Watch videos".
func (e Exercise) VideoQuery() string {
	return strings.TrimSpace(e.Name + " exercise")
}

// Similar returns up to limit records from candidates, skipping the record
// with the given id. limit <= 0 means no cap.
func Similar(candidates []Exercise, id string, limit int) []Exercise {
	out := make([]Exercise, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == id {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
