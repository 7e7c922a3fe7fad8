package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/checklists/internal/checklists/service"
	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

// writeServiceError maps a service error to its API error. Anything the
// services do not classify is a bad request, never a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		checklistsdk.NewValidationError(verr.Fields).WriteError(w)
	case errors.Is(err, service.ErrAuthentication):
		checklistsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		checklistsdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrMalformedID):
		checklistsdk.ErrInvalidID.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		checklistsdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Warn("request failed", "err", err)
		checklistsdk.ErrBadRequest.WriteError(w)
	}
}

func writeBodyError(w http.ResponseWriter) {
	checklistsdk.NewBadRequest("request body is not valid JSON").WriteError(w)
}
