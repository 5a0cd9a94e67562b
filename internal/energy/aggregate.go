package energy

import (
	"context"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stats summarizes a set of records.
type Stats struct {
	Total   decimal.Decimal `json:"total" example:"300.00"`   // Sum of all values in kWh
	Average decimal.Decimal `json:"average" example:"150.00"` // Average value in kWh, rounded to two decimal places
	Count   int64           `json:"count" example:"2"`        // Number of records
}

// YearValue is the total of one year.
type YearValue struct {
	Year  int             `json:"year" example:"2024"`
	Value decimal.Decimal `json:"value" example:"300.00"`
}

// Series is the per-year total of one category, aligned with StackedSeries.Years.
type Series struct {
	Category        string            `json:"category" example:"Solar"`
	Values          []decimal.Decimal `json:"values"`
	BackgroundColor string            `json:"backgroundColor" example:"rgba(231, 76, 60, 0.7)"`
	BorderColor     string            `json:"borderColor" example:"rgba(231, 76, 60, 1)"`
}

// StackedSeries is one series per category sharing a common year axis.
type StackedSeries struct {
	Years  []int    `json:"years"`
	Series []Series `json:"series"`
}

// Breakdown maps year to category name to subcategory name to the summed value.
// It only contains combinations that have at least one record.
type Breakdown map[int]map[string]map[string]decimal.Decimal

// DashboardStats returns total, average and count of all records, or of
// the records of a category if categoryID is not uuid.Nil.
func (s *Service) DashboardStats(ctx context.Context, categoryID uuid.UUID) (Stats, error) {
	records, err := s.store.QueryRecords(ctx, models.RecordFilter{CategoryID: categoryID})
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: decimal.Zero, Average: decimal.Zero}
	for _, r := range records {
		stats.Total = stats.Total.Add(r.ValueKWh)
	}
	stats.Count = int64(len(records))

	if stats.Count > 0 {
		stats.Average = stats.Total.DivRound(decimal.NewFromInt(stats.Count), 2)
	}

	return stats, nil
}

// YearlySeries returns the total per year in ascending order. Years
// without records are not included.
func (s *Service) YearlySeries(ctx context.Context, categoryID uuid.UUID) ([]YearValue, error) {
	records, err := s.store.QueryRecords(ctx, models.RecordFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	totals := make(map[int]decimal.Decimal)
	for _, r := range records {
		totals[r.Year] = totals[r.Year].Add(r.ValueKWh)
	}

	years := sortedKeys(totals)
	series := make([]YearValue, 0, len(years))
	for _, year := range years {
		series = append(series, YearValue{Year: year, Value: totals[year]})
	}

	return series, nil
}

// DistinctYears returns the years that have records in ascending order.
func (s *Service) DistinctYears(ctx context.Context, categoryID uuid.UUID) ([]int, error) {
	records, err := s.store.QueryRecords(ctx, models.RecordFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}

	return distinctYears(records), nil
}

// StackedYearlySeries returns one series per category with records. The
// series are ordered by category name and their values are aligned with
// the years of all records. Missing combinations are zero.
func (s *Service) StackedYearlySeries(ctx context.Context) (StackedSeries, error) {
	records, err := s.store.QueryRecords(ctx, models.RecordFilter{})
	if err != nil {
		return StackedSeries{}, err
	}

	years := distinctYears(records)
	index := make(map[int]int, len(years))
	for i, year := range years {
		index[year] = i
	}

	type categoryTotals struct {
		name   string
		values []decimal.Decimal
	}

	byCategory := make(map[uuid.UUID]*categoryTotals)
	for _, r := range records {
		totals, ok := byCategory[r.CategoryID]
		if !ok {
			totals = &categoryTotals{
				name:   r.Category.Name,
				values: zeros(len(years)),
			}
			byCategory[r.CategoryID] = totals
		}

		i := index[r.Year]
		totals.values[i] = totals.values[i].Add(r.ValueKWh)
	}

	categories := maps.Values(byCategory)
	slices.SortFunc(categories, func(a, b *categoryTotals) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		}
		return 0
	})

	stacked := StackedSeries{
		Years:  years,
		Series: make([]Series, 0, len(categories)),
	}

	for i, c := range categories {
		background, border := SeriesColors(i)
		stacked.Series = append(stacked.Series, Series{
			Category:        c.name,
			Values:          c.values,
			BackgroundColor: background,
			BorderColor:     border,
		})
	}

	return stacked, nil
}

// Breakdown returns the sum of all records per year, category and subcategory.
func (s *Service) Breakdown(ctx context.Context) (Breakdown, error) {
	records, err := s.store.QueryRecords(ctx, models.RecordFilter{})
	if err != nil {
		return nil, err
	}

	breakdown := make(Breakdown)
	for _, r := range records {
		categories, ok := breakdown[r.Year]
		if !ok {
			categories = make(map[string]map[string]decimal.Decimal)
			breakdown[r.Year] = categories
		}

		subCategories, ok := categories[r.Category.Name]
		if !ok {
			subCategories = make(map[string]decimal.Decimal)
			categories[r.Category.Name] = subCategories
		}

		subCategories[r.SubCategory.Name] = subCategories[r.SubCategory.Name].Add(r.ValueKWh)
	}

	return breakdown, nil
}

func distinctYears(records []models.EnergyRecord) []int {
	seen := make(map[int]struct{})
	for _, r := range records {
		seen[r.Year] = struct{}{}
	}

	return sortedKeys(seen)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func zeros(n int) []decimal.Decimal {
	values := make([]decimal.Decimal, n)
	for i := range values {
		values[i] = decimal.Zero
	}
	return values
}
