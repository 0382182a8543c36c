package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/gas-booking/constant"
	"github.com/muhammadheryan/gas-booking/utils/errors"
)

// ErrorResponse is the body for every failed request. Message is safe to
// show directly to the end user.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

// writeError maps CustomError to its status and message. Anything else is
// surfaced as a generic internal error without leaking details.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	internal := errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, internal.ErrorHTTPCode(), ErrorResponse{
		Code:    internal.ErrorCode(),
		Message: internal.Error(),
	})
}
