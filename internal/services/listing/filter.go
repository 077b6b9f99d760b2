// Package listing implements the searchable, paginated account lists.
package listing

import (
	"strings"
	"time"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
)

// DateLayout is the DD-MM-YYYY format used by every console date.
const DateLayout = "02-01-2006"

// Filters is the filter state of a list view.
type Filters struct {
	SearchTerm   string `json:"searchTerm"`
	FilterBy     string `json:"filterBy"`
	DateFilter   string `json:"dateFilter"`
	StatusFilter string `json:"statusFilter"`
}

// Validate rejects an unknown field name or a malformed date.
func (f Filters) Validate() error {
	switch f.FilterBy {
	case "", models.FieldName, models.FieldEmail, models.FieldID, models.FieldAddress:
	default:
		return errors.ErrInvalidFilter.WithMessage("cannot filter by %q", f.FilterBy)
	}
	if d := strings.TrimSpace(f.DateFilter); d != "" {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return errors.ErrInvalidFilter.WithMessage("date filter must be DD-MM-YYYY")
		}
	}
	return nil
}

// Filter returns the records matching f. With no filters set the input slice
// is returned as is. The search term matches when any searchable field
// contains it, ignoring case; FilterBy narrows that to one field.
func Filter[T models.Record](records []T, f Filters) []T {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	status := strings.TrimSpace(f.StatusFilter)
	since, hasSince := parseDate(f.DateFilter)

	if term == "" && status == "" && !hasSince {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if term != "" && !matches(r, term, f.FilterBy) {
			continue
		}
		if status != "" && !strings.EqualFold(r.RecordStatus(), status) {
			continue
		}
		if hasSince {
			joined := r.Joined()
			if joined == nil || joined.Before(since) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func matches(r models.Record, term, field string) bool {
	for _, f := range r.SearchFields() {
		if field != "" && f.Name != field {
			continue
		}
		if strings.Contains(strings.ToLower(f.Value), term) {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
