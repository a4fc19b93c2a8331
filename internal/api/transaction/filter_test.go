package transaction

import (
	"testing"
	"time"

	"FinanceTracker/pkg/predicate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseFilterOptions(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]string
		wantErr error
		check   func(t *testing.T, o FilterOptions)
	}{
		{
			name:   "empty params",
			params: map[string]string{},
			check: func(t *testing.T, o FilterOptions) {
				assert.Equal(t, FilterOptions{}, o)
			},
		},
		{
			name: "all options",
			params: map[string]string{
				"search":     " Lunch ",
				"type":       "expense",
				"category":   "food",
				"start_date": "2024-01-01",
				"end_date":   "2024-01-31",
			},
			check: func(t *testing.T, o FilterOptions) {
				assert.Equal(t, "Lunch", o.Search)
				assert.Equal(t, TypeExpense, o.Type)
				assert.Equal(t, CategoryFood, o.Category)
				require.NotNil(t, o.StartDate)
				require.NotNil(t, o.EndDate)
				assert.Equal(t, date(t, "2024-01-01"), *o.StartDate)
				assert.Equal(t, date(t, "2024-01-31"), *o.EndDate)
			},
		},
		{
			name:   "unknown keys ignored",
			params: map[string]string{"page": "2", "type": ""},
			check: func(t *testing.T, o FilterOptions) {
				assert.Equal(t, FilterOptions{}, o)
			},
		},
		{name: "bad type", params: map[string]string{"type": "refund"}, wantErr: ErrInvalidTransactionType},
		{name: "bad category", params: map[string]string{"category": "Food"}, wantErr: ErrInvalidCategory},
		{name: "bad start date", params: map[string]string{"start_date": "2024-13-01"}, wantErr: ErrInvalidDate},
		{name: "bad end date", params: map[string]string{"end_date": "yesterday"}, wantErr: ErrInvalidDate},
		{
			name:    "inverted range",
			params:  map[string]string{"start_date": "2024-02-01", "end_date": "2024-01-01"},
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilterOptions(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestFilterOptionsPredicate(t *testing.T) {
	assert.Equal(t, predicate.True(), FilterOptions{}.Predicate())

	start := date(t, "2024-01-01")
	opts := FilterOptions{
		Search:    "lunch",
		Type:      TypeExpense,
		Category:  CategoryFood,
		StartDate: &start,
	}

	want := predicate.And(
		predicate.Or(
			predicate.Contains(FieldCategory, "lunch"),
			predicate.Contains(FieldDescription, "lunch"),
		),
		predicate.Eq(FieldType, "expense"),
		predicate.Eq(FieldCategory, "food"),
		predicate.Range(FieldDate, start, nil),
	)
	assert.Equal(t, want, opts.Predicate())
}

func TestFilterOptionsKey(t *testing.T) {
	a, err := ParseFilterOptions(map[string]string{"search": "Food", "end_date": "2024-01-31"})
	require.NoError(t, err)
	b, err := ParseFilterOptions(map[string]string{"search": "food", "end_date": "2024-01-31", "page": "3"})
	require.NoError(t, err)
	c, err := ParseFilterOptions(map[string]string{"search": "food"})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestOwnerScoped(t *testing.T) {
	_, err := OwnerScoped(" ", predicate.True())
	assert.ErrorIs(t, err, ErrMissingOwner)

	p, err := OwnerScoped("user-a", predicate.Eq(FieldType, "income"))
	require.NoError(t, err)
	assert.Equal(t, predicate.And(
		predicate.Eq(FieldOwner, "user-a"),
		predicate.Eq(FieldType, "income"),
	), p)

	p, err = OwnerScoped("user-a", predicate.True())
	require.NoError(t, err)
	assert.Equal(t, predicate.Eq(FieldOwner, "user-a"), p)
}
