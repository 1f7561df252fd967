package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind string

const (
	NotFound           Kind = "not_found"
	Transient          Kind = "transient"
	PermissionDenied   Kind = "permission_denied"
	MissingGroundTruth Kind = "missing_ground_truth"
	Invalid            Kind = "invalid"
	Locked             Kind = "locked"
)

var statusByKind = map[Kind]int{
	NotFound:           http.StatusNotFound,
	Transient:          http.StatusServiceUnavailable,
	PermissionDenied:   http.StatusForbidden,
	MissingGroundTruth: http.StatusUnprocessableEntity,
	Invalid:            http.StatusBadRequest,
	Locked:             http.StatusConflict,
}

type statusError struct {
	error
	kind Kind
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) Kind() Kind {
	return e.kind
}

func (e statusError) HTTPStatus() int {
	if status, ok := statusByKind[e.kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(kind Kind, format string, args ...any) error {
	return statusError{error: fmt.Errorf(format, args...), kind: kind}
}

// Wrap attaches kind to err. The message reads "<msg>: <err>".
func Wrap(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return statusError{error: fmt.Errorf(format+": %w", append(args, err)...), kind: kind}
}

// KindOf returns the kind of the outermost classified error in the chain. Unclassified
// errors are treated as transient.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var se statusError
	if errors.As(err, &se) {
		return se.kind
	}
	return Transient
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Aborts reports whether a batch operation should stop at err instead of recording it
// and moving on to the next row.
func Aborts(err error) bool {
	return Is(err, PermissionDenied)
}

func HTTPStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func Respond(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": err.Error(), "kind": KindOf(err)})
}
