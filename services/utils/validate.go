package utils

import (
	"log"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("tx-id", ValidateTxID); err != nil {
		log.Fatal(err)
	}
}

// Transaction and asset ids on the wire are CB58 strings
func ValidateTxID(fl validator.FieldLevel) bool {
	_, err := ids.FromString(fl.Field().String())
	return err == nil
}
