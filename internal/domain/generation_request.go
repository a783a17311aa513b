package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Form field names accepted from a submission.
const (
	FieldContentType  = "tipo"
	FieldTopic        = "tema"
	FieldStyle        = "estilo"
	FieldTargetLength = "longitud"
)

// RequiredFields lists the submission keys in the order they are checked.
var RequiredFields = []string{FieldContentType, FieldTopic, FieldStyle, FieldTargetLength}

// Fields is a raw submission: form field name to unparsed value.
type Fields map[string]string

// GenerationRequest is one validated submission. It lives only for the
// duration of the request that created it.
type GenerationRequest struct {
	// ID correlates log lines for a single submission.
	ID uuid.UUID `form:"-"`

	ContentType  string `form:"tipo"     validate:"required"`
	Topic        string `form:"tema"     validate:"required"`
	Style        string `form:"estilo"   validate:"required"`
	TargetLength int    `form:"longitud" validate:"gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report form keys instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseGenerationRequest turns raw fields into a GenerationRequest.
//
// A key that is absent, or whose value is blank, yields a *MissingFieldError
// naming the key. A longitud that is not a positive integer yields an
// *InvalidFormatError. Keys are checked in RequiredFields order.
func ParseGenerationRequest(fields Fields) (*GenerationRequest, error) {
	values := make(map[string]string, len(RequiredFields))
	for _, key := range RequiredFields {
		raw, ok := fields[key]
		if !ok || strings.TrimSpace(raw) == "" {
			return nil, &MissingFieldError{Field: key}
		}
		values[key] = raw
	}

	length := strings.TrimSpace(values[FieldTargetLength])
	n, err := strconv.Atoi(length)
	if err != nil {
		return nil, &InvalidFormatError{
			Field:  FieldTargetLength,
			Value:  length,
			Reason: ReasonNotInteger,
		}
	}

	req := &GenerationRequest{
		ID:           uuid.New(),
		ContentType:  values[FieldContentType],
		Topic:        values[FieldTopic],
		Style:        values[FieldStyle],
		TargetLength: n,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks the request against its struct tags and converts the
// first failure into a MissingFieldError or InvalidFormatError.
func (r *GenerationRequest) Validate() error {
	return toDomainError(validate.Struct(r), r)
}

func toDomainError(err error, r *GenerationRequest) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Keep the fixed field order so the first missing key is reported.
	byField := make(map[string]validator.FieldError, len(verrs))
	for _, fe := range verrs {
		byField[fe.Field()] = fe
	}
	for _, key := range RequiredFields {
		fe, ok := byField[key]
		if !ok {
			continue
		}
		if fe.Tag() == "required" {
			return &MissingFieldError{Field: key}
		}
		return &InvalidFormatError{
			Field:  key,
			Value:  strconv.Itoa(r.TargetLength),
			Reason: ReasonNotPositive,
		}
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}
