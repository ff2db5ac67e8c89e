package server

import (
	"net/http"

	"isolux/internal/logger"
	"isolux/internal/photometric"
)

// errorKind is the client-distinguishable error taxonomy the compute
// endpoint reports (spec §7).
type errorKind string

const (
	kindParamInvalid errorKind = "param_invalid"
	kindIESInvalid   errorKind = "ies_invalid"
	kindGridTooLarge errorKind = "grid_too_large"
	kindInternal     errorKind = "internal"
)

type errorResponse struct {
	Kind    errorKind `json:"kind"`
	Message string    `json:"message"`
}

// classifyError maps an error returned by the compute pipeline (or by
// request validation) onto a client-facing kind and HTTP status.
func classifyError(err error) (errorKind, int, string) {
	switch e := err.(type) {
	case *photometric.ParseError:
		return kindIESInvalid, http.StatusUnprocessableEntity, e.Error()
	case *photometric.CapacityError:
		return kindGridTooLarge, http.StatusRequestEntityTooLarge, e.Error()
	case *photometric.InternalError:
		logger.Default.Errorf("internal compute error: %+v", e)
		return kindInternal, http.StatusInternalServerError, "internal compute error"
	default:
		return kindParamInvalid, http.StatusBadRequest, err.Error()
	}
}
