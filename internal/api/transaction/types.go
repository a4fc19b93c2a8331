package transaction

import "FinanceTracker/pkg/predicate"

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryBills         Category = "bills"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategorySalary        Category = "salary"
	CategoryOther         Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryBills, CategoryEntertainment, CategoryShopping,
		CategoryHealth, CategoryEducation, CategorySalary, CategoryOther:
		return true
	default:
		return false
	}
}

func IsValidType(s string) bool {
	return Type(s).Valid()
}

func IsValidCategory(s string) bool {
	return Category(s).Valid()
}

// Fields a transaction exposes to predicates.
const (
	FieldOwner       predicate.Field = "owner"
	FieldType        predicate.Field = "type"
	FieldCategory    predicate.Field = "category"
	FieldDescription predicate.Field = "description"
	FieldDate        predicate.Field = "date"
	FieldAmount      predicate.Field = "amount"
)

const DateLayout = "2006-01-02"
