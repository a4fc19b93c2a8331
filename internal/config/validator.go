package config

import (
	"FinanceTracker/internal/api/transaction"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func NewValidator() *validator.Validate {
	v := validator.New()

	if err := transaction.RegisterValidations(v); err != nil {
		logrus.Fatalf("Failed to register transaction validations: %v", err)
	}

	return v
}
