package predicate

import (
	"fmt"
	"strings"
)

// Columns maps predicate fields to SQL column expressions.
type Columns map[Field]string

// Compile renders p as a SQL boolean expression with '?' placeholders.
// Callers are expected to Rebind the result for their driver.
func Compile(p Predicate, cols Columns) (string, []interface{}, error) {
	var args []interface{}
	sql, err := compile(p, cols, &args)
	if err != nil {
		return "", nil, err
	}
	return sql, args, nil
}

func compile(p Predicate, cols Columns, args *[]interface{}) (string, error) {
	switch e := p.(type) {
	case nil, TrueExpr:
		return "TRUE", nil
	case AndExpr:
		return join(e.Terms, " AND ", "TRUE", cols, args)
	case OrExpr:
		return join(e.Terms, " OR ", "FALSE", cols, args)
	case EqExpr:
		col, err := column(cols, e.Field)
		if err != nil {
			return "", err
		}
		*args = append(*args, e.Value)
		return col + " = ?", nil
	case RangeExpr:
		col, err := column(cols, e.Field)
		if err != nil {
			return "", err
		}
		var parts []string
		if e.Lower != nil {
			*args = append(*args, e.Lower)
			parts = append(parts, col+" >= ?")
		}
		if e.Upper != nil {
			*args = append(*args, e.Upper)
			parts = append(parts, col+" <= ?")
		}
		if len(parts) == 0 {
			return "TRUE", nil
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil
	case ContainsExpr:
		col, err := column(cols, e.Field)
		if err != nil {
			return "", err
		}
		*args = append(*args, "%"+escapeLike(e.Substr)+"%")
		return col + ` ILIKE ? ESCAPE '\'`, nil
	default:
		return "", fmt.Errorf("unsupported predicate %T", p)
	}
}

func join(terms []Predicate, sep, empty string, cols Columns, args *[]interface{}) (string, error) {
	if len(terms) == 0 {
		return empty, nil
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		s, err := compile(t, cols, args)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func column(cols Columns, f Field) (string, error) {
	col, ok := cols[f]
	if !ok {
		return "", fmt.Errorf("no column for field %s", f)
	}
	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
