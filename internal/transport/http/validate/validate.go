package validate

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
)

var v = validator.New()

func init() {
	// report json field names instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DecodeJSON decodes the request body strictly: unknown fields are rejected
// so client typos surface as 400s instead of silently dropped data.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return domain.ErrInvalidInput("unknown field in JSON body")
		}
		return domain.ErrInvalidInput("invalid JSON body")
	}
	return nil
}

// Struct validates a request DTO and maps the first failure into the domain
// taxonomy.
func Struct(dst any) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return domain.ErrMissingField(fe.Field())
		}
		return domain.ErrInvalidField(fe.Field(), fe.Tag())
	}
	return domain.ErrInvalidInput("invalid request body")
}
