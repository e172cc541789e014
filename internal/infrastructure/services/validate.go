package services

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/DanielPopoola/checkout-sdk/internal/domain"
	"github.com/DanielPopoola/checkout-sdk/internal/infrastructure/transport"
	"github.com/go-playground/validator"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if a, ok := field.Interface().(domain.Amount); ok {
			f, _ := a.Float64()
			return f
		}
		return nil
	}, domain.Amount{})
	return v
}

// checkRequest validates req before it reaches the network and reports the
// first failing field under its mapped code.
func checkRequest(req any, codes map[string]string, fallback string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if code, ok := codes[verrs[0].StructField()]; ok {
			return domain.NewError(code)
		}
	}
	return domain.WrapError(fallback, err)
}

// checkResponse rejects decoded replies missing the fields callers rely on.
func checkResponse(resp any, code string) error {
	if err := validate.Struct(resp); err != nil {
		return domain.WrapError(code, fmt.Errorf("unexpected response shape: %w", err))
	}
	return nil
}

// wrap lifts a transport failure into the business taxonomy, keeping the
// parsed body as details.
func wrap(code string, err error) error {
	if reqErr, ok := transport.IsRequestError(err); ok {
		return domain.WrapErrorWithDetails(code, err, reqErr.Body)
	}
	return domain.WrapError(code, err)
}
