package transaction

import (
	"FinanceTracker/pkg/predicate"
	"FinanceTracker/pkg/response"
	"fmt"
	"strings"
	"time"
)

// Query parameters understood by the list, summary and export endpoints.
const (
	ParamSearch    = "search"
	ParamType      = "type"
	ParamCategory  = "category"
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
)

// FilterOptions is the typed form of the filter query parameters.
// Zero values impose no constraint.
type FilterOptions struct {
	Search    string
	Type      Type
	Category  Category
	StartDate *time.Time
	EndDate   *time.Time
}

// ParseFilterOptions validates raw query parameters. Keys it does not know
// are ignored; known keys with malformed values are rejected.
func ParseFilterOptions(params map[string]string) (FilterOptions, error) {
	var opts FilterOptions

	opts.Search = strings.TrimSpace(params[ParamSearch])

	if v := strings.TrimSpace(params[ParamType]); v != "" {
		if !IsValidType(v) {
			return FilterOptions{}, response.Wrap(ErrInvalidTransactionType, fmt.Sprintf("%s=%q", ParamType, v))
		}
		opts.Type = Type(v)
	}

	if v := strings.TrimSpace(params[ParamCategory]); v != "" {
		if !IsValidCategory(v) {
			return FilterOptions{}, response.Wrap(ErrInvalidCategory, fmt.Sprintf("%s=%q", ParamCategory, v))
		}
		opts.Category = Category(v)
	}

	var err error
	if opts.StartDate, err = parseDateParam(params, ParamStartDate); err != nil {
		return FilterOptions{}, err
	}
	if opts.EndDate, err = parseDateParam(params, ParamEndDate); err != nil {
		return FilterOptions{}, err
	}

	if opts.StartDate != nil && opts.EndDate != nil && opts.StartDate.After(*opts.EndDate) {
		return FilterOptions{}, ErrInvalidDateRange
	}

	return opts, nil
}

func parseDateParam(params map[string]string, key string) (*time.Time, error) {
	v := strings.TrimSpace(params[key])
	if v == "" {
		return nil, nil
	}
	d, err := ParseDate(v)
	if err != nil {
		return nil, response.Wrap(ErrInvalidDate, fmt.Sprintf("%s=%q", key, v))
	}
	return &d, nil
}

// ParseDate parses a calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Predicate composes the options: every supplied option must hold, and
// search matches either the category or the description.
func (o FilterOptions) Predicate() predicate.Predicate {
	var terms []predicate.Predicate

	if o.Search != "" {
		terms = append(terms, predicate.Or(
			predicate.Contains(FieldCategory, o.Search),
			predicate.Contains(FieldDescription, o.Search),
		))
	}
	if o.Type != "" {
		terms = append(terms, predicate.Eq(FieldType, string(o.Type)))
	}
	if o.Category != "" {
		terms = append(terms, predicate.Eq(FieldCategory, string(o.Category)))
	}

	var lower, upper interface{}
	if o.StartDate != nil {
		lower = *o.StartDate
	}
	if o.EndDate != nil {
		upper = *o.EndDate
	}
	terms = append(terms, predicate.Range(FieldDate, lower, upper))

	return predicate.And(terms...)
}

// Key is a stable textual form of the options, used for cache keys.
func (o FilterOptions) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "s=%q|t=%s|c=%s", strings.ToLower(o.Search), o.Type, o.Category)
	if o.StartDate != nil {
		b.WriteString("|from=" + o.StartDate.Format(DateLayout))
	}
	if o.EndDate != nil {
		b.WriteString("|to=" + o.EndDate.Format(DateLayout))
	}
	return b.String()
}

// OwnerScoped puts the owner constraint in front of p. Every store query goes
// through here, so no predicate can reach another user's records.
func OwnerScoped(ownerID string, p predicate.Predicate) (predicate.Predicate, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrMissingOwner
	}
	return predicate.And(predicate.Eq(FieldOwner, ownerID), p), nil
}
