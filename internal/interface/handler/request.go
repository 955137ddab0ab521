package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"travel-sample-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// tenant names become collection prefixes
var tenantPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("tenant", func(fl validator.FieldLevel) bool {
		return tenantPattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type credentialsRequest struct {
	User     string `json:"user" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

type bookingRequest struct {
	Flights []entity.Booking `json:"flights" validate:"required,min=1,dive"`
}

// decodeJSON reads a size-limited JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

// validationMessage turns validator errors into one readable line
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have at least %s entries", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s characters", field, fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "tenant":
			msgs = append(msgs, field+" must be 1-64 letters, digits, '_' or '-'")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// validTenant reports whether tenant can name a collection prefix
func validTenant(tenant string) bool {
	return validate.Var(tenant, "required,tenant") == nil
}
