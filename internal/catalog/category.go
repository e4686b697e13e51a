package catalog

import (
	"context"
	"log"
)

// Wildcard is the synthetic category meaning "no body-part filter".
const Wildcard = "all"

// FallbackBodyParts is used when the body-part list cannot be fetched.
var FallbackBodyParts = []string{
	"back",
	"cardio",
	"chest",
	"lower arms",
	"lower legs",
	"neck",
	"shoulders",
	"upper arms",
	"upper legs",
	"waist",
}

// CategorySource lists the server-side body-part vocabulary.
type CategorySource interface {
	BodyPartList(ctx context.Context) ([]string, error)
}

// LoadCategories returns the wildcard followed by the server's body parts in
// server order. A failed fetch falls back to FallbackBodyParts.
func LoadCategories(ctx context.Context, src CategorySource) []string {
	parts, err := src.BodyPartList(ctx)
	if err != nil {
		log.Printf("Failed to load body parts, using fallback list: %v", err)
		parts = FallbackBodyParts
	}
	categories := make([]string, 0, len(parts)+1)
	categories = append(categories, Wildcard)
	return append(categories, parts...)
}

// IsWildcard reports whether category selects every exercise.
func IsWildcard(category string) bool {
	return category == "" || category == Wildcard
}
