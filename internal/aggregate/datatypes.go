package aggregate

import (
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// ExposedDataTypes returns the union of all data classes across the given
// breach records. Deduplication is case-insensitive with the first-seen
// casing preserved, so "Passwords" and "passwords" collapse into whichever
// appeared first.
func ExposedDataTypes(breaches []model.BreachRecord) []string {
	types := make([]string, 0)
	seen := make(map[string]bool)

	for _, breach := range breaches {
		for _, class := range breach.DataClasses {
			key := strings.ToLower(class)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			types = append(types, class)
		}
	}

	return types
}
