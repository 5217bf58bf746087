package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a referenced address id has no matching record.
var ErrNotFound = errors.New("address not found")

// Address represents a single named geographic point stored in the directory.
type Address struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressInput is the create/update payload. A nil field means the caller did
// not supply it, which on update leaves the stored value untouched.
type AddressInput struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field rejection for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

const (
	msgNameRequired      = "Name is required and must not be empty"
	msgLatitudeRequired  = "Latitude is required"
	msgLongitudeRequired = "Longitude is required"
	msgLatitudeRange     = "Latitude value must be between -90 to 90"
	msgLongitudeRange    = "Longitude value must be between -180 to 180"
)

// ValidateCreate checks a create payload: every field must be present and
// within range. Returns nil when the input is acceptable.
func (in AddressInput) ValidateCreate() *ValidationError {
	var fields []FieldError

	if in.Name == nil || *in.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: msgNameRequired})
	}
	switch {
	case in.Latitude == nil:
		fields = append(fields, FieldError{Field: "latitude", Message: msgLatitudeRequired})
	case *in.Latitude < -90 || *in.Latitude > 90:
		fields = append(fields, FieldError{Field: "latitude", Message: msgLatitudeRange})
	}
	switch {
	case in.Longitude == nil:
		fields = append(fields, FieldError{Field: "longitude", Message: msgLongitudeRequired})
	case *in.Longitude < -180 || *in.Longitude > 180:
		fields = append(fields, FieldError{Field: "longitude", Message: msgLongitudeRange})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateUpdate checks an update payload: absent fields pass untouched,
// supplied fields get the same checks as on create.
func (in AddressInput) ValidateUpdate() *ValidationError {
	var fields []FieldError

	if in.Name != nil && *in.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: msgNameRequired})
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		fields = append(fields, FieldError{Field: "latitude", Message: msgLatitudeRange})
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		fields = append(fields, FieldError{Field: "longitude", Message: msgLongitudeRange})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
