package server

import (
	"errors"
	"net/http"

	"tsteg/api"
	"tsteg/pkg/codec"
	"tsteg/pkg/config"
	"tsteg/pkg/selector"
)

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
)

// classifyStegError maps the core's sentinel errors onto HTTP statuses and
// stable error codes, so API clients can tell "not enough room" from
// "wrong secret" from "damaged image" without parsing messages.
func classifyStegError(err error) (int, api.Error) {
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return http.StatusBadRequest, api.Error{Code: "invalid_config", Error: err.Error()}
	case errors.Is(err, selector.ErrEmptyKey):
		return http.StatusBadRequest, api.Error{Code: "empty_key", Error: err.Error()}
	case errors.Is(err, selector.ErrNotEnoughCapacity):
		return http.StatusBadRequest, api.Error{Code: "not_enough_capacity", Error: err.Error()}
	case errors.Is(err, codec.ErrPayloadTruncated):
		return http.StatusUnprocessableEntity, api.Error{Code: "payload_truncated", Error: err.Error()}
	case errors.Is(err, codec.ErrChecksumMismatch):
		return http.StatusUnprocessableEntity, api.Error{Code: "integrity_failure", Error: err.Error()}
	default:
		return http.StatusInternalServerError, api.Error{Code: "internal_error", Error: "An unexpected error occurred"}
	}
}
