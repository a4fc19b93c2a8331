// Package predicate describes filters over records as plain values, so the
// same filter can be pushed down to SQL or evaluated in memory.
package predicate

type Field string

type Predicate interface {
	predicate()
}

type (
	AndExpr struct {
		Terms []Predicate
	}

	OrExpr struct {
		Terms []Predicate
	}

	EqExpr struct {
		Field Field
		Value interface{}
	}

	// RangeExpr is inclusive on both ends. A nil bound is open.
	RangeExpr struct {
		Field Field
		Lower interface{}
		Upper interface{}
	}

	// ContainsExpr matches a case-insensitive substring.
	ContainsExpr struct {
		Field  Field
		Substr string
	}

	TrueExpr struct{}
)

func (AndExpr) predicate()      {}
func (OrExpr) predicate()       {}
func (EqExpr) predicate()       {}
func (RangeExpr) predicate()    {}
func (ContainsExpr) predicate() {}
func (TrueExpr) predicate()     {}

func True() Predicate {
	return TrueExpr{}
}

// And drops nil and always-true terms. With nothing left it returns True.
func And(terms ...Predicate) Predicate {
	kept := compact(terms)
	switch len(kept) {
	case 0:
		return TrueExpr{}
	case 1:
		return kept[0]
	default:
		return AndExpr{Terms: kept}
	}
}

// Or drops nil terms; an Or without terms matches nothing.
func Or(terms ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if t == nil {
			continue
		}
		if _, ok := t.(TrueExpr); ok {
			return TrueExpr{}
		}
		kept = append(kept, t)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return OrExpr{Terms: kept}
}

func Eq(field Field, value interface{}) Predicate {
	return EqExpr{Field: field, Value: value}
}

func Range(field Field, lower, upper interface{}) Predicate {
	if lower == nil && upper == nil {
		return TrueExpr{}
	}
	return RangeExpr{Field: field, Lower: lower, Upper: upper}
}

func Contains(field Field, substr string) Predicate {
	return ContainsExpr{Field: field, Substr: substr}
}

func compact(terms []Predicate) []Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if t == nil {
			continue
		}
		if _, ok := t.(TrueExpr); ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
