package predicate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row map[Field]interface{}

func (r row) FieldValue(f Field) (interface{}, bool) {
	v, ok := r[f]
	return v, ok
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAndOrSimplify(t *testing.T) {
	assert.Equal(t, TrueExpr{}, And())
	assert.Equal(t, TrueExpr{}, And(nil, True()))
	assert.Equal(t, Eq("a", "x"), And(True(), Eq("a", "x")))
	assert.Equal(t, TrueExpr{}, Or(Eq("a", "x"), True()))
	assert.Equal(t, OrExpr{Terms: []Predicate{}}, Or())
	assert.Equal(t, TrueExpr{}, Range("d", nil, nil))
}

func TestEvaluate(t *testing.T) {
	rec := row{
		"type":        "expense",
		"category":    "food",
		"description": "Lunch at Mario's",
		"date":        day("2024-01-06"),
		"amount":      decimal.RequireFromString("250.50"),
	}

	tests := []struct {
		name string
		p    Predicate
		want bool
	}{
		{"true", True(), true},
		{"eq match", Eq("type", "expense"), true},
		{"eq miss", Eq("type", "income"), false},
		{"range inclusive lower", Range("date", day("2024-01-06"), nil), true},
		{"range inclusive upper", Range("date", nil, day("2024-01-06")), true},
		{"range outside", Range("date", day("2024-01-07"), day("2024-02-01")), false},
		{"decimal range", Range("amount", decimal.RequireFromString("250.5"), nil), true},
		{"contains case insensitive", Contains("description", "MARIO"), true},
		{"contains miss", Contains("description", "dinner"), false},
		{"or", Or(Contains("category", "lunch"), Contains("description", "lunch")), true},
		{"empty or", Or(), false},
		{"and", And(Eq("category", "food"), Eq("type", "income")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.p, rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	rec := row{"date": day("2024-01-06")}

	_, err := Evaluate(Eq("missing", "x"), rec)
	assert.Error(t, err)

	_, err = Evaluate(Eq("date", "2024-01-06"), rec)
	assert.Error(t, err)

	_, err = Evaluate(Contains("date", "2024"), rec)
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	cols := Columns{
		"owner":       "user_id",
		"type":        "type",
		"category":    "category",
		"description": "description",
		"date":        "date",
	}

	p := And(
		Eq("owner", "u1"),
		Or(Contains("category", "50%_off"), Contains("description", "50%_off")),
		Eq("type", "expense"),
		Range("date", day("2024-01-01"), day("2024-01-31")),
	)

	sql, args, err := Compile(p, cols)
	require.NoError(t, err)
	assert.Equal(t,
		`(user_id = ? AND (category ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\') AND type = ? AND (date >= ? AND date <= ?))`,
		sql)
	assert.Equal(t, []interface{}{
		"u1",
		`%50\%\_off%`,
		`%50\%\_off%`,
		"expense",
		day("2024-01-01"),
		day("2024-01-31"),
	}, args)
}

func TestCompileTrueAndUnknownField(t *testing.T) {
	sql, args, err := Compile(True(), Columns{})
	require.NoError(t, err)
	assert.Equal(t, "TRUE", sql)
	assert.Empty(t, args)

	sql, _, err = Compile(Or(), Columns{})
	require.NoError(t, err)
	assert.Equal(t, "FALSE", sql)

	_, _, err = Compile(Eq("nope", 1), Columns{})
	assert.Error(t, err)
}
