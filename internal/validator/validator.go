package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/showtime-booking/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired          = "is required"
	ErrMinValue          = "must be greater than %s"
	ErrMinItems          = "must contain at least %s item(s)"
	ErrMaxItems          = "must contain at most %s item(s)"
	ErrInvalidPayment    = "must be one of CARD, UPI, NET_BANKING, WALLET, CASH"
	ErrInvalidPrice      = "must be a non-negative amount with at most two decimal places"
	ErrInvalidFieldValue = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("payment_method", validatePaymentMethod)
	validator.RegisterValidation("price", validatePrice)

	return validator
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).Valid()
}

func validatePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return !price.IsNegative() && price.Equal(price.Round(2))
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "gt":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "min":
		return fmt.Sprintf(ErrMinItems, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxItems, err.Param())
	case "payment_method":
		return ErrInvalidPayment
	case "price":
		return ErrInvalidPrice
	default:
		return ErrInvalidFieldValue
	}
}
