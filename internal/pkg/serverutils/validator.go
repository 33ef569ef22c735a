package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the failures
// into one readable message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, len(errs))
		for i, fe := range errs {
			messages[i] = fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag())
		}
		return NewBadRequest(strings.Join(messages, "; "))
	}
	return nil
}
