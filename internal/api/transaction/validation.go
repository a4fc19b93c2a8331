package transaction

import "github.com/go-playground/validator/v10"

// RegisterValidations adds the transaction_type and transaction_category tags.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("transaction_type", func(fl validator.FieldLevel) bool {
		return IsValidType(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("transaction_category", func(fl validator.FieldLevel) bool {
		return IsValidCategory(fl.Field().String())
	})
}
