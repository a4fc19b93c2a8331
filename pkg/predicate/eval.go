package predicate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record exposes field values to Evaluate.
type Record interface {
	FieldValue(field Field) (interface{}, bool)
}

// Evaluate reports whether rec satisfies p.
func Evaluate(p Predicate, rec Record) (bool, error) {
	switch e := p.(type) {
	case nil, TrueExpr:
		return true, nil
	case AndExpr:
		for _, t := range e.Terms {
			ok, err := Evaluate(t, rec)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case OrExpr:
		for _, t := range e.Terms {
			ok, err := Evaluate(t, rec)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case EqExpr:
		v, err := lookup(rec, e.Field)
		if err != nil {
			return false, err
		}
		c, err := compare(v, e.Value)
		if err != nil {
			return false, fmt.Errorf("field %s: %w", e.Field, err)
		}
		return c == 0, nil
	case RangeExpr:
		v, err := lookup(rec, e.Field)
		if err != nil {
			return false, err
		}
		if e.Lower != nil {
			c, err := compare(v, e.Lower)
			if err != nil {
				return false, fmt.Errorf("field %s: %w", e.Field, err)
			}
			if c < 0 {
				return false, nil
			}
		}
		if e.Upper != nil {
			c, err := compare(v, e.Upper)
			if err != nil {
				return false, fmt.Errorf("field %s: %w", e.Field, err)
			}
			if c > 0 {
				return false, nil
			}
		}
		return true, nil
	case ContainsExpr:
		v, err := lookup(rec, e.Field)
		if err != nil {
			return false, err
		}
		s, ok := v.(string)
		if !ok {
			return false, fmt.Errorf("field %s: contains needs a string, got %T", e.Field, v)
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(e.Substr)), nil
	default:
		return false, fmt.Errorf("unsupported predicate %T", p)
	}
}

func lookup(rec Record, field Field) (interface{}, error) {
	v, ok := rec.FieldValue(field)
	if !ok {
		return nil, fmt.Errorf("unknown field %s", field)
	}
	return v, nil
}

func compare(a, b interface{}) (int, error) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, mismatch(a, b)
		}
		return strings.Compare(x, y), nil
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, mismatch(a, b)
		}
		return x.Compare(y), nil
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		if !ok {
			return 0, mismatch(a, b)
		}
		return x.Cmp(y), nil
	case int64:
		y, ok := b.(int64)
		if !ok {
			return 0, mismatch(a, b)
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot compare %T", a)
}

func mismatch(a, b interface{}) error {
	return fmt.Errorf("cannot compare %T with %T", a, b)
}
