package movementdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-banco/banco-api/internal/domain"
)

// ValidMovementKind checks that the bound field is a supported movement kind.
var ValidMovementKind validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if kind, ok := fieldLevel.Field().Interface().(string); ok {
		return domain.MovementKind(kind).IsValid()
	}

	return false
}
