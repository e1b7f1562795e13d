package shop

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError through errors.Is.
	ErrNotFound = errors.New("not found")

	ErrProductNotFound = &NotFoundError{Kind: "product"}
	ErrOrderNotFound   = &NotFoundError{Kind: "order"}
)

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError reports input the storefront refuses to act on. Nothing is
// mutated when an operation returns one.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Description
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a lookup miss. Two NotFoundErrors match under
// errors.Is when their kinds agree, so ErrProductNotFound matches any
// product miss regardless of the id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	var nf *NotFoundError
	if errors.As(target, &nf) {
		return nf.Kind == e.Kind
	}
	return false
}

func productNotFound(id int) error {
	return &NotFoundError{Kind: "product", ID: fmt.Sprint(id)}
}
