package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance behind every entity's Validate
// method. Constraints live in struct tags; checkStruct translates the first
// violation into the matching sentinel error so callers can use errors.Is.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldSentinels maps struct field names to the sentinel returned when that
// field fails its tag. Fields without an entry get a generic wrapper.
var fieldSentinels = map[string]error{
	"ID":       ErrInvalidID,
	"Name":     ErrEmptyName,
	"Owner":    ErrEmptyName,
	"Quantity": ErrNegativeQuantity,
	"Price":    ErrNegativePrice,
	"Age":      ErrAgeOutOfRange,
	"Score":    ErrScoreOutOfRange,
}

func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	fe := fieldErrs[0]
	if sentinel, ok := fieldSentinels[fe.StructField()]; ok {
		return sentinel
	}
	return fmt.Errorf("%w: field %s fails constraint %q", ErrInvalidValue, fe.StructField(), fe.Tag())
}
