package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator evaluates field Rules with go-playground/validator and turns the
// failing tag into the message configured on the field.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

// Validate checks every field and returns the first failing message per
// field.  The result is empty when the values can be submitted.
func (fv *Validator) Validate(fields []Field, vals Values) Errors {
	errs := Errors{}
	for _, f := range fields {
		if msg := fv.Field(f, vals[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

// Field returns the message of the first rule raw violates, or "".  A
// value that passes is guaranteed to decode with ParseUint, ParseInt or
// ParseFloat as its rules imply.
func (fv *Validator) Field(f Field, raw string) string {
	raw = strings.TrimSpace(raw)
	r := f.Rules

	var tags []string
	if r.Required != "" {
		tags = append(tags, "required")
	} else if raw == "" {
		return ""
	}
	if r.Email != "" {
		tags = append(tags, "email")
	}
	if msg := fv.check(raw, tags, r); msg != "" {
		return msg
	}

	if r.NotSentinel != "" {
		// compared as a number: "00" is the sentinel too
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return r.NotSentinel
		}
		if msg := fv.check(id, []string{"ne=" + SentinelValue}, r); msg != "" {
			return msg
		}
	}

	if f.Kind != KindNumber {
		return ""
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return firstNonEmpty(r.Integer, r.Required, "Enter a number")
	}
	if r.Integer != "" {
		if _, err := strconv.Atoi(raw); err != nil {
			return r.Integer
		}
	}
	tags = tags[:0]
	if r.Min != nil {
		tags = append(tags, "min="+formatBound(r.Min.Value))
	}
	if r.Max != nil {
		tags = append(tags, "max="+formatBound(r.Max.Value))
	}
	return fv.check(n, tags, r)
}

func (fv *Validator) check(value any, tags []string, r Rules) string {
	if len(tags) == 0 {
		return ""
	}
	err := fv.v.Var(value, strings.Join(tags, ","))
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid value"
	}
	return message(verrs[0].Tag(), r)
}

func message(tag string, r Rules) string {
	switch tag {
	case "required":
		return r.Required
	case "ne":
		return r.NotSentinel
	case "email":
		return r.Email
	case "min":
		return r.Min.Message
	case "max":
		return r.Max.Message
	}
	return "Invalid value"
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
