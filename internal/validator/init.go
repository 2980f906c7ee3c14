package validator

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "marker": exactly one character and not a blank
	if err := validate.RegisterValidation("marker", func(fl validator.FieldLevel) bool {
		return game.Marker(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
