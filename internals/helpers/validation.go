// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// ValidationFieldErrors flattens validator.v10 errors into the envelope's
// field → messages map.
func ValidationFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
