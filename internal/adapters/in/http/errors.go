package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// detailResponse is the body of non-field errors: authentication failures,
// missing objects and unexpected faults.
type detailResponse struct {
	Detail string `json:"detail"`
}

// fieldErrorsResponse maps a field name to the list of its violation
// messages. Errors not tied to a field go under "non_field_errors".
type fieldErrorsResponse map[string][]string

const nonFieldErrors = "non_field_errors"

// respondError translates an application error into the API's error
// contract. Classification runs on the sentinel chain, so wrapped and
// joined errors are handled uniformly.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, tenant.ErrUserBlocked):
		return c.JSON(http.StatusForbidden, detailResponse{Detail: "User blocked by administrator."})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return c.JSON(http.StatusBadRequest, collectFieldErrors(err))
	default:
		c.Logger().Errorf("unhandled error: %v", err)
		return c.JSON(http.StatusInternalServerError, detailResponse{Detail: "Internal server error."})
	}
}

// collectFieldErrors flattens an error tree into per-field messages.
// Aggregate constructors join several field errors at once and each must
// surface under its own key.
func collectFieldErrors(err error) fieldErrorsResponse {
	out := fieldErrorsResponse{}
	walkErrors(err, out)
	if len(out) == 0 {
		out[nonFieldErrors] = []string{err.Error()}
	}
	return out
}

// walkErrors visits every node of the error tree. Type assertions are used
// instead of errors.As so that sibling errors under errors.Join all get
// reported, not just the first match.
func walkErrors(err error, out fieldErrorsResponse) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *errs.ValueIsRequiredError:
		out[e.ParamName] = append(out[e.ParamName], "This field is required.")
	case *errs.ValueIsInvalidError:
		out[e.ParamName] = append(out[e.ParamName], invalidMessage(e))
	case *errs.ValueIsOutOfRangeError:
		out[e.ParamName] = append(out[e.ParamName], "Value is out of range.")
	case *errs.ObjectAlreadyExistsError:
		out[e.ParamName] = append(out[e.ParamName], "This value is already in use.")
	case interface{ Unwrap() []error }:
		for _, joined := range e.Unwrap() {
			walkErrors(joined, out)
		}
	case interface{ Unwrap() error }:
		walkErrors(e.Unwrap(), out)
	}
}

func invalidMessage(e *errs.ValueIsInvalidError) string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "Invalid value."
}
