package listing

import (
	"fmt"
	"testing"
	"time"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customers(n int) []models.Customer {
	out := make([]models.Customer, n)
	for i := range out {
		out[i] = models.Customer{
			CustomerID: fmt.Sprintf("c-%03d", i+1),
			Name:       fmt.Sprintf("Customer %d", i+1),
			Email:      fmt.Sprintf("customer%d@example.com", i+1),
		}
	}
	return out
}

func joined(s string) *time.Time {
	t, _ := time.Parse(DateLayout, s)
	return &t
}

func TestFilter(t *testing.T) {
	records := []models.Customer{
		{CustomerID: "c-1", Name: "Alice Smith", Email: "alice@x.com", Address: "Lagos", Status: "active", JoinedAt: joined("01-02-2024")},
		{CustomerID: "c-2", Name: "Bob", Email: "bob@x.com", Address: "Accra", Status: "inactive", JoinedAt: joined("15-03-2024")},
		{CustomerID: "c-3", Name: "Carol", Email: "carol@lagos.io", Address: "Nairobi", Status: "Active"},
	}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"blank term keeps everything", Filters{SearchTerm: "   "}, []string{"c-1", "c-2", "c-3"}},
		{"case insensitive name", Filters{SearchTerm: "ALICE"}, []string{"c-1"}},
		{"term is trimmed", Filters{SearchTerm: "  bob  "}, []string{"c-2"}},
		{"any field matches", Filters{SearchTerm: "lagos"}, []string{"c-1", "c-3"}},
		{"matches id", Filters{SearchTerm: "c-2"}, []string{"c-2"}},
		{"not tokenized", Filters{SearchTerm: "smith alice"}, nil},
		{"filter by address only", Filters{SearchTerm: "lagos", FilterBy: models.FieldAddress}, []string{"c-1"}},
		{"status ignores case", Filters{StatusFilter: "ACTIVE"}, []string{"c-1", "c-3"}},
		{"joined since", Filters{DateFilter: "01-03-2024"}, []string{"c-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range Filter(records, tt.filters) {
				got = append(got, r.CustomerID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := customers(45)
	f := Filters{SearchTerm: "customer 1"}
	once := Filter(records, f)
	assert.Equal(t, once, Filter(once, f))
}

func TestFilter_MerchantSearchesBusinessName(t *testing.T) {
	records := []models.Merchant{
		{MerchantID: "m-1", Name: "Jane", BusinessName: "Sunrise Bakery"},
		{MerchantID: "m-2", Name: "Sunrise", BusinessName: "Corner Shop"},
	}
	got := Filter(records, Filters{SearchTerm: "sunrise"})
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].MerchantID)
}

func TestFilters_Validate(t *testing.T) {
	assert.NoError(t, Filters{FilterBy: models.FieldEmail, DateFilter: "09-03-2024"}.Validate())
	assert.ErrorIs(t, Filters{FilterBy: "phone"}.Validate(), errors.ErrInvalidFilter)
	assert.ErrorIs(t, Filters{DateFilter: "2024-03-09"}.Validate(), errors.ErrInvalidFilter)
}

func TestPaginate(t *testing.T) {
	items := customers(45)

	assert.Len(t, Paginate(items, 1), 20)
	assert.Len(t, Paginate(items, 3), 5)
	assert.Empty(t, Paginate(items, 4))
	assert.Empty(t, Paginate([]models.Customer{}, 1))
	assert.Equal(t, 3, TotalPages(45))
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, ClampPage(0, 0))
	assert.Equal(t, 3, ClampPage(9, 3))
}

func TestView_Navigation(t *testing.T) {
	v := NewView[models.Customer](CustomerLabels)
	v.SetRecords(customers(45))

	m := v.Model()
	assert.Equal(t, 1, m.CurrentPage)
	assert.False(t, m.HasPrevious)
	assert.True(t, m.HasNext)
	assert.Equal(t, "Showing 1-20 of 45", m.Counter)

	v.Previous()
	assert.Equal(t, 1, v.Model().CurrentPage)

	v.Next()
	v.Next()
	v.Next()
	m = v.Model()
	assert.Equal(t, 3, m.CurrentPage)
	assert.False(t, m.HasNext)
	assert.Len(t, m.Rows, 5)
	assert.Equal(t, "Showing 41-45 of 45", m.Counter)
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView[models.Customer](CustomerLabels)
	v.SetRecords(customers(45))
	v.Next()
	v.Next()

	require.NoError(t, v.SetFilters(Filters{SearchTerm: "customer"}))
	assert.Equal(t, 1, v.Model().CurrentPage)

	v.Next()
	v.Reset()
	m := v.Model()
	assert.Equal(t, 1, m.CurrentPage)
	assert.Equal(t, Filters{}, m.Filters)
}

func TestView_RefetchClampsPage(t *testing.T) {
	v := NewView[models.Customer](CustomerLabels)
	v.SetRecords(customers(45))
	v.Next()
	v.Next()

	v.SetRecords(customers(5))
	m := v.Model()
	assert.Equal(t, 1, m.CurrentPage)
	assert.Len(t, m.Rows, 5)
}

func TestView_EmptyState(t *testing.T) {
	v := NewView[models.Customer](CustomerLabels)
	v.SetRecords(customers(3))
	require.NoError(t, v.SetFilters(Filters{SearchTerm: "nobody"}))

	m := v.Model()
	require.NotNil(t, m.EmptyState)
	assert.Equal(t, "No Customers Found", m.EmptyState.Title)
	assert.Equal(t, "Add Customers", m.EmptyState.ActionLabel)
	assert.Nil(t, m.Rows)
	assert.Empty(t, m.Counter)
	assert.False(t, m.HasNext)

	mv := NewView[models.Merchant](MerchantLabels).Model()
	assert.Equal(t, "No Merchants Found", mv.EmptyState.Title)
}

func TestView_RejectsInvalidFilters(t *testing.T) {
	v := NewView[models.Customer](CustomerLabels)
	v.SetRecords(customers(45))
	v.Next()

	assert.Error(t, v.SetFilters(Filters{FilterBy: "phone"}))
	assert.Equal(t, 2, v.Model().CurrentPage)
}
