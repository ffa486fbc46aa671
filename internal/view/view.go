package view

import (
	"time"

	"github.com/samber/lo"

	"exusiai.dev/statsboard/internal/model"
	"exusiai.dev/statsboard/internal/service"
)

const (
	Title    = "Fridge Sales Stats"
	Endpoint = "/api/stats"
)

type Card struct {
	Label string
	Value string
}

type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no rows and should render a single
// placeholder row instead.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Span is the colspan of the placeholder row.
func (t Table) Span() int {
	return len(t.Columns)
}

// Page is everything the dashboard shows for one state.
type Page struct {
	Title    string
	Endpoint string
	Cards    []Card
	Tables   []Table
	Error    string
	LoadedAt time.Time
	// Pending makes the page reload itself until the running attempt lands.
	Pending bool
}

// Build maps a loader state to a page. It never fails: absent values render
// as Placeholder.
func Build(state service.State) Page {
	s := state.Stats
	if s == nil {
		s = &model.Stats{}
	}

	return Page{
		Title:    Title,
		Endpoint: Endpoint,
		Cards: []Card{
			{Label: "Rows", Value: formatValue(s.RowCount)},
			{Label: "Min Price", Value: formatValue(s.MinPrice)},
			{Label: "Max Price", Value: formatValue(s.MaxPrice)},
			{Label: "Avg Price", Value: formatValue(s.AvgPrice)},
			{Label: "Min Rating", Value: formatValue(s.MinRating)},
			{Label: "Max Rating", Value: formatValue(s.MaxRating)},
			{Label: "Avg Rating", Value: formatValue(s.AvgRating)},
		},
		Tables: []Table{
			{
				Title:   "Sentiment breakdown",
				Columns: []string{"Sentiment", "Count"},
				Rows: lo.Map(s.Sentiments, func(r model.SentimentCount, _ int) []string {
					return []string{formatValue(r.Sentiment), formatValue(r.Count)}
				}),
			},
			{
				Title:   "Top 5 brands",
				Columns: []string{"Brand", "Count"},
				Rows: lo.Map(s.TopBrands, func(r model.BrandCount, _ int) []string {
					return []string{formatValue(r.Brand), formatValue(r.Count)}
				}),
			},
			{
				Title:   "Top 5 stores",
				Columns: []string{"Store", "Count"},
				Rows: lo.Map(s.TopStores, func(r model.StoreCount, _ int) []string {
					return []string{formatValue(r.StoreName), formatValue(r.Count)}
				}),
			},
		},
		Error:    state.Error,
		LoadedAt: state.LoadedAt,
		Pending:  state.Pending,
	}
}
