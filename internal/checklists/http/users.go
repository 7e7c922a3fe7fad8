package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/service"
	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/aussiebroadwan/checklists/pkg/httpx"
	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

type UsersHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
	TokenHeader  string
}

// HandleRegister godoc
//
//	@Summary		Register a user
//	@Description	Creates an account and starts a session. The session token is returned in the x-auth response header.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checklistsdk.Credentials	true	"email and password (at least 6 characters)"
//	@Success		200		{object}	checklistsdk.User			"id, email"
//	@Header			200		{string}	x-auth						"session token"
//	@Failure		400		{object}	checklistsdk.APIError		"validation_error, bad_request"
//	@Failure		429		{object}	checklistsdk.APIError		"rate_limit_exceeded"
//	@Router			/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checklistsdk.Credentials
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w)
		return
	}

	u, err := h.UserService.Register(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.startSession(w, r, u)
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Checks the credentials and starts a new session. Existing sessions of the user stay valid.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checklistsdk.Credentials	true	"email and password"
//	@Success		200		{object}	checklistsdk.User			"id, email"
//	@Header			200		{string}	x-auth						"session token"
//	@Failure		400		{object}	checklistsdk.APIError		"invalid_credentials, bad_request"
//	@Failure		429		{object}	checklistsdk.APIError		"rate_limit_exceeded"
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req checklistsdk.Credentials
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w)
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthentication) {
			slogx.FromContext(r.Context()).Info("login failed")
		}
		writeServiceError(w, r, err)
		return
	}

	h.startSession(w, r, u)
}

// startSession issues a token for u and answers with the profile.
func (h *UsersHandler) startSession(w http.ResponseWriter, r *http.Request, u domain.User) {
	token, err := h.TokenService.Issue(r.Context(), u.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set(h.TokenHeader, token)
	httpx.WriteJSON(w, http.StatusOK, toUser(u.Profile()))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Description	Returns the user holding the session token.
//	@Tags			Users
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	checklistsdk.User		"id, email"
//	@Failure		401	{object}	checklistsdk.APIError	"invalid_token"
//	@Router			/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r.Context())
	if !ok {
		checklistsdk.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u.Profile()))
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Ends the session holding the presented token. Other sessions of the user are untouched.
//	@Tags			Users
//	@Security		TokenAuth
//	@Success		200	"empty body"
//	@Failure		400	{object}	checklistsdk.APIError	"bad_request"
//	@Failure		401	{object}	checklistsdk.APIError	"invalid_token"
//	@Router			/users/me/token [delete].
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if err := h.TokenService.Revoke(ctx, userID, httpx.TokenFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusOK)
}
