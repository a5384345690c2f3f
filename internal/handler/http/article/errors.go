package article

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/respond"
	artUC "article-desk/internal/usecase/article"
)

var errInvalidBody = fmt.Errorf("%w: request body is not a JSON object", entity.ErrInvalidInput)

// writeError maps use case errors to HTTP responses.
func writeError(w http.ResponseWriter, err error) {
	if ve, ok := entity.AsValidationErrors(err); ok {
		respond.Validation(w, ve)
		return
	}
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// decodeBody decodes a JSON object body into a T and writes the error response itself
// when the body cannot be used at all. Members whose JSON type does not match are
// returned as validation failures; the remaining members are still decoded.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, entity.ValidationErrors, bool) {
	var req T

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.SafeError(w, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
		} else {
			respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		}
		return req, nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		respond.SafeError(w, http.StatusBadRequest, errors.New("request body is required"))
		return req, nil, false
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return req, nil, false
	}

	names := lo.Keys(members)
	slices.Sort(names)
	rejected := lo.FilterMap(names, func(name string, _ int) (*entity.ValidationError, bool) {
		return memberTypeError[T](name, members[name])
	})

	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(body, &req); err != nil && !errors.As(err, &typeErr) {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return req, nil, false
	}
	return req, rejected, true
}

// memberTypeError decodes one member on its own and reports a JSON type mismatch.
func memberTypeError[T any](name string, raw json.RawMessage) (*entity.ValidationError, bool) {
	single, err := json.Marshal(map[string]json.RawMessage{name: raw})
	if err != nil {
		return nil, false
	}
	var scratch T
	var typeErr *json.UnmarshalTypeError
	if !errors.As(json.Unmarshal(single, &scratch), &typeErr) {
		return nil, false
	}

	field := lo.Ternary(typeErr.Field != "", typeErr.Field, name)
	return &entity.ValidationError{
		Field:   field,
		Message: entity.FieldLabel(field) + " must be " + jsonKind(typeErr.Type),
	}, true
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid value"
	}
}
