package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"mixology/internal/app/users"
	"mixology/internal/logging"
	"mixology/internal/store"
)

const maxBodyBytes = 1 << 20

var (
	errNoInput     = errors.New("no input data provided")
	errInvalidJSON = errors.New("invalid JSON payload")
	errInvalidID   = errors.New("invalid id")
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// validationError lists request fields that failed presence checks.
type validationError struct {
	fields map[string]string
}

func (e *validationError) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing required fields: " + strings.Join(names, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		default:
			fields[fe.Field()] = fmt.Sprintf("failed %q validation", fe.Tag())
		}
	}
	return &validationError{fields: fields}
}

// decodePayload rejects empty bodies, "null" and "{}" with errNoInput before
// decoding into dst.
func decodePayload(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidJSON
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return errNoInput
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return errInvalidJSON
	}
	if len(fields) == 0 {
		return errNoInput
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrIngredientNotFound),
		errors.Is(err, store.ErrCocktailNotFound),
		errors.Is(err, store.ErrDishNotFound),
		errors.Is(err, store.ErrFavoriteNotFound),
		errors.Is(err, store.ErrPairingNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, errNoInput),
		errors.Is(err, errInvalidJSON),
		errors.Is(err, errInvalidID),
		errors.Is(err, users.ErrPasswordRequired),
		errors.Is(err, store.ErrFavoriteTargetMissing),
		errors.Is(err, store.ErrFavoriteTargetConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code and writes it as a JSON error body.
// Server-side failures carry the underlying message and are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error(), Fields: vErr.fields})
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
