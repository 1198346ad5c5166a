package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-banco/banco-api/internal/domain"
)

// ValidAccountType checks that the bound field is a supported account type.
var ValidAccountType validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if accountType, ok := fieldLevel.Field().Interface().(string); ok {
		return domain.AccountType(accountType).IsValid()
	}

	return false
}
