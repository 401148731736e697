package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/WyZzYx/APBD10/internal/entity"
)

const maxDeviceTypeNameLen = 100

var validate = validator.New(validator.WithRequiredStructEnabled())

type deviceParams struct {
	DeviceTypeName       string `validate:"required,max=100"`
	AdditionalProperties string `validate:"required,json"`
}

func ValidateDeviceInput(in entity.DeviceInput) error {
	props := string(bytes.TrimSpace(in.AdditionalProperties))
	if props == "null" {
		props = ""
	}

	err := validate.Struct(deviceParams{
		DeviceTypeName:       strings.TrimSpace(in.DeviceTypeName),
		AdditionalProperties: props,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate device: %w", err)
	}

	fe := fieldErrs[0]

	switch {
	case fe.Field() == "DeviceTypeName" && fe.Tag() == "required":
		return entity.NewValidationError("DeviceTypeName is required.")
	case fe.Field() == "DeviceTypeName" && fe.Tag() == "max":
		return entity.NewValidationError(fmt.Sprintf("DeviceTypeName must be at most %d characters.", maxDeviceTypeNameLen))
	case fe.Field() == "AdditionalProperties" && fe.Tag() == "required":
		return entity.NewValidationError("AdditionalProperties is required.")
	case fe.Field() == "AdditionalProperties" && fe.Tag() == "json":
		return entity.NewValidationError("AdditionalProperties must be valid JSON.")
	default:
		return entity.NewValidationError(fmt.Sprintf("%s is invalid.", fe.Field()))
	}
}
