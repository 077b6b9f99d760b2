package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	apperrors "orusconsole/internal/errors"
	"orusconsole/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return func() time.Time { return t }
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, p)

	_, err = ParsePeriod("hourly")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
}

func TestRangeFor(t *testing.T) {
	now := fixedClock("2024-03-15")()

	tests := []struct {
		period Period
		from   string
	}{
		{Daily, "09-03-2024"},
		{Weekly, "17-02-2024"},
		{Monthly, "15-10-2023"},
		{Yearly, "15-03-2021"},
		{Period("other"), "15-03-2024"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			r := RangeFor(tt.period, now)
			assert.Equal(t, tt.from, r.FromDate)
			assert.Equal(t, "15-03-2024", r.ToDate)
		})
	}
}

func TestRangeFor_MonthOverflow(t *testing.T) {
	r := RangeFor(Monthly, fixedClock("2024-07-31")())
	assert.Equal(t, "02-03-2024", r.FromDate)
}

func decodeMetrics(t *testing.T, raw string) *models.DashboardMetrics {
	t.Helper()
	var m models.DashboardMetrics
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return &m
}

func TestChart(t *testing.T) {
	assert.Empty(t, Chart(nil))

	m := decodeMetrics(t, `{
		"merchants": {"totalCredit": 10, "newMerchants": 2, "totalMerchants": 8},
		"customers": {"totalCustomers": 1200, "activeCustomers": 900},
		"tickets": {"totalProcessingTickets": "3", "totalPendingTickets": "abc", "totalCompletedTickets": null, "totalTickets": 7}
	}`)
	points := Chart(m)
	require.Len(t, points, 16)

	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	assert.Equal(t, []string{
		"Merchant Credit", "New Merchants", "Total Sales", "Total PayOut", "Total Merchants",
		"Total Load Money", "Total Bonus", "Total Customers", "Customer Credit", "Active Customers",
		"Total Debit", "Total Purchase", "Processing Tickets", "Pending Tickets", "Completed Tickets",
		"Total Tickets",
	}, labels)

	assert.Equal(t, 10.0, points[0].Value)
	assert.Equal(t, 3.0, points[12].Value)
	assert.Equal(t, 0.0, points[13].Value)
	assert.Equal(t, 0.0, points[14].Value)
	assert.Equal(t, 7.0, points[15].Value)
}

func TestSummary(t *testing.T) {
	empty := Summary(nil)
	require.Len(t, empty, 3)
	for _, tile := range empty {
		assert.Equal(t, "0", tile.Value)
		assert.Equal(t, 0, tile.Progress)
	}

	m := decodeMetrics(t, `{
		"merchants": {"newMerchants": 2, "totalMerchants": 8},
		"customers": {"totalCustomers": 1200, "activeCustomers": 900},
		"tickets": {"totalCompletedTickets": "9", "totalTickets": 0}
	}`)
	tiles := Summary(m)
	assert.Equal(t, Tile{Label: "Customers", Value: "1200", Progress: 75}, tiles[0])
	assert.Equal(t, Tile{Label: "Merchants", Value: "8", Progress: 25}, tiles[1])
	assert.Equal(t, Tile{Label: "Tickets", Value: "0", Progress: 0}, tiles[2])
}

func TestPercent_Clamped(t *testing.T) {
	assert.Equal(t, 100, percent(models.Number(15), models.Number(10)))
	assert.Equal(t, 0, percent(models.Number(-5), models.Number(10)))
	assert.Equal(t, 0, percent(models.Number(5), models.Number(0)))
}

// gatedSource answers each range only when the test releases it.
type gatedSource struct {
	mu    sync.Mutex
	gates map[string]chan result
	calls []models.DateRange
}

type result struct {
	metrics *models.DashboardMetrics
	err     error
}

func newGatedSource() *gatedSource {
	return &gatedSource{gates: map[string]chan result{}}
}

func (s *gatedSource) gate(key string) chan result {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.gates[key]
	if !ok {
		ch = make(chan result, 1)
		s.gates[key] = ch
	}
	return ch
}

func (s *gatedSource) DashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error) {
	s.mu.Lock()
	s.calls = append(s.calls, r)
	s.mu.Unlock()

	select {
	case res := <-s.gate(r.Key()):
		return res.metrics, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func totalCustomers(n float64) *models.DashboardMetrics {
	m := &models.DashboardMetrics{}
	m.Customers.TotalCustomers = models.Number(n)
	return m
}

func TestCard_LoadsDefaultPeriod(t *testing.T) {
	src := newGatedSource()
	clock := WithClock(fixedClock("2024-03-15"))
	card := NewCard(src, zap.NewNop(), clock)
	defer card.Close()

	loading := card.Snapshot()
	assert.Equal(t, Weekly, loading.Period)
	require.NotNil(t, loading.Loading)
	assert.Equal(t, "Fetching weekly records...", loading.Loading.Message)
	assert.Nil(t, loading.Chart)

	weekly := RangeFor(Weekly, fixedClock("2024-03-15")())
	src.gate(weekly.Key()) <- result{metrics: totalCustomers(42)}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m := card.Await(ctx)
	assert.Nil(t, m.Loading)
	assert.Len(t, m.Chart, 16)
	assert.Equal(t, "42", m.Summary[0].Value)
}

func TestCard_DiscardsStaleResponse(t *testing.T) {
	src := newGatedSource()
	now := fixedClock("2024-03-15")
	card := NewCard(src, zap.NewNop(), WithClock(now))
	defer card.Close()

	card.Select(Daily)
	daily := RangeFor(Daily, now())
	weekly := RangeFor(Weekly, now())

	src.gate(daily.Key()) <- result{metrics: totalCustomers(7)}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m := card.Await(ctx)
	require.Nil(t, m.Loading)
	assert.Equal(t, "7", m.Summary[0].Value)

	// the superseded weekly fetch was cancelled, and a late answer changes nothing
	src.gate(weekly.Key()) <- result{metrics: totalCustomers(999)}
	time.Sleep(10 * time.Millisecond)
	m = card.Snapshot()
	assert.Equal(t, Daily, m.Period)
	assert.Equal(t, "7", m.Summary[0].Value)
}

func TestCard_ErrorStillRendersEmptyChart(t *testing.T) {
	src := newGatedSource()
	now := fixedClock("2024-03-15")
	card := NewCard(src, zap.NewNop(), WithClock(now))
	defer card.Close()

	src.gate(RangeFor(Weekly, now()).Key()) <- result{err: errors.New("platform down")}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m := card.Await(ctx)
	assert.Equal(t, "platform down", m.Error)
	assert.Empty(t, m.Chart)
	assert.Equal(t, "0", m.Summary[0].Value)
}

func TestCard_CloseWakesWaiters(t *testing.T) {
	card := NewCard(newGatedSource(), zap.NewNop())
	card.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m := card.Await(ctx)
	assert.NoError(t, ctx.Err())
	assert.Nil(t, m.Loading)
}
