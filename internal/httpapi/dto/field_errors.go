package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Literal validation messages surfaced to clients. These are the fixed
// per-field strings the frontend renders verbatim.
const (
	MsgRequired     = "required field"
	MsgTooLong      = "value too long"
	MsgTooShort     = "value too short"
	MsgInvalidValue = "invalid value"
	MsgTooLarge     = "number too large"
	MsgInvalidEmail = "invalid address"
	MsgInvalidDate  = "invalid date"
)

// messageForTag is the static rule table: validator tag -> literal message.
var messageForTag = map[string]string{
	"required": MsgRequired,
	"max":      MsgTooLong,
	"min":      MsgTooShort,
	"email":    MsgInvalidEmail,
	"oneof":    MsgInvalidValue,
}

// numericTags marks fields where min/max bound a number, not a length.
var numericFields = map[string]bool{
	"price":  true,
	"count":  true,
	"amount": true,
}

// FieldErrors flattens a gin binding error into field -> message using the
// static table. Non-validator errors come back under the "body" key so the
// client always gets the same response shape.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = MsgInvalidValue
		return out
	}
	for _, fe := range verrs {
		field := jsonFieldName(fe)
		msg, ok := messageForTag[fe.Tag()]
		if !ok {
			msg = MsgInvalidValue
		}
		if numericFields[field] {
			switch fe.Tag() {
			case "min":
				msg = MsgInvalidValue
			case "max":
				msg = MsgTooLarge
			}
		}
		if _, exists := out[field]; !exists {
			out[field] = msg
		}
	}
	return out
}

// jsonFieldName lowercases the struct field into its json name. The DTOs
// use snake_case json tags matching the lowered Go names closely enough
// that validator's Field() plus a small fixup table covers all of them.
func jsonFieldName(fe validator.FieldError) string {
	if name, ok := jsonNames[fe.Field()]; ok {
		return name
	}
	return toSnake(fe.Field())
}

var jsonNames = map[string]string{
	"ImageURL": "image_url",
}

func toSnake(s string) string {
	out := make([]rune, 0, len(s)+4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
