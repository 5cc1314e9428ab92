package progress

import (
	"strings"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// FilterAll is the category filter value that matches every topic.
const FilterAll = "all"

// FilterTopics derives the visible topic subset from a category filter and
// a case-insensitive name substring query. An empty category or [FilterAll]
// passes all categories; an empty query matches every name. Order is
// preserved.
func FilterTopics(topics []models.Topic, category string, query string) []models.Topic {
	q := strings.ToLower(query)

	filtered := make([]models.Topic, 0, len(topics))
	for _, t := range topics {
		if category != "" && category != FilterAll && string(t.Category) != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) {
			continue
		}
		filtered = append(filtered, t)
	}

	return filtered
}
