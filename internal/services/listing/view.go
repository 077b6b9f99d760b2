package listing

import (
	"fmt"
	"strings"
	"sync"

	"orusconsole/internal/models"
)

// ItemsPerPage is fixed for every list view.
const ItemsPerPage = 20

// TotalPages is ceil(n / ItemsPerPage); an empty list has zero pages.
func TotalPages(n int) int {
	return (n + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage keeps page within [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the items shown on page. Out of range pages yield an
// empty slice rather than panicking.
func Paginate[T any](items []T, page int) []T {
	start := (page - 1) * ItemsPerPage
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := min(start+ItemsPerPage, len(items))
	return items[start:end]
}

// Labels names the entity a list shows.
type Labels struct {
	Singular string
	Plural   string
	AddURL   string
}

var (
	CustomerLabels = Labels{Singular: "Customer", Plural: "Customers", AddURL: "/admin/customers/add"}
	MerchantLabels = Labels{Singular: "Merchant", Plural: "Merchants", AddURL: "/admin/merchants/add"}
)

type EmptyState struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ActionLabel string `json:"actionLabel"`
	ActionURL   string `json:"actionUrl"`
}

// Model is what a list view renders.
type Model[T any] struct {
	Rows        []T         `json:"rows,omitempty"`
	Filters     Filters     `json:"filters"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalItems  int         `json:"totalItems"`
	Counter     string      `json:"counter,omitempty"`
	HasPrevious bool        `json:"hasPrevious"`
	HasNext     bool        `json:"hasNext"`
	EmptyState  *EmptyState `json:"emptyState,omitempty"`
}

// Build filters, clamps and paginates records into a view model.
func Build[T models.Record](records []T, f Filters, page int, labels Labels) Model[T] {
	filtered := Filter(records, f)
	total := TotalPages(len(filtered))
	page = ClampPage(page, total)
	visible := Paginate(filtered, page)

	m := Model[T]{
		Filters:     f,
		CurrentPage: page,
		TotalPages:  total,
		TotalItems:  len(filtered),
	}
	if len(visible) == 0 {
		m.EmptyState = &EmptyState{
			Title: fmt.Sprintf("No %s Found", labels.Plural),
			Message: fmt.Sprintf("No %s match your current search or filter criteria. Try adjusting your search terms or filters.",
				strings.ToLower(labels.Plural)),
			ActionLabel: "Add " + labels.Plural,
			ActionURL:   labels.AddURL,
		}
		return m
	}

	start := (page - 1) * ItemsPerPage
	m.Rows = visible
	m.Counter = fmt.Sprintf("Showing %d-%d of %d", start+1, start+len(visible), len(filtered))
	m.HasPrevious = page > 1
	m.HasNext = page < total
	return m
}

// View is one mounted list: its records, filters and page.
type View[T models.Record] struct {
	mu      sync.Mutex
	labels  Labels
	records []T
	filters Filters
	page    int
	loaded  bool
}

func NewView[T models.Record](labels Labels) *View[T] {
	return &View[T]{labels: labels, page: 1}
}

// SetRecords replaces the list membership after a (re)fetch.
func (v *View[T]) SetRecords(records []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = records
	v.loaded = true
	v.clamp()
}

// Loaded reports whether records have been fetched at least once.
func (v *View[T]) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// SetFilters applies new filter inputs and returns to the first page.
func (v *View[T]) SetFilters(f Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = f
	v.page = 1
	return nil
}

// Reset clears every filter and returns to the first page.
func (v *View[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = Filters{}
	v.page = 1
}

// Next moves forward one page; a no-op on the last page.
func (v *View[T]) Next() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page++
	v.clamp()
}

// Previous moves back one page; a no-op on the first page.
func (v *View[T]) Previous() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page--
	v.clamp()
}

func (v *View[T]) Model() Model[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clamp()
	return Build(v.records, v.filters, v.page, v.labels)
}

func (v *View[T]) clamp() {
	v.page = ClampPage(v.page, TotalPages(len(Filter(v.records, v.filters))))
}
