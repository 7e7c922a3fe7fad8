package http

import (
	"net/http"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/service"
	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/aussiebroadwan/checklists/pkg/httpx"
)

type ChecklistsHandler struct {
	ChecklistService *service.ChecklistService
}

// HandleCreate godoc
//
//	@Summary		Create a checklist
//	@Description	Creates a checklist owned by the caller. Items always start incomplete.
//	@Tags			Checklists
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			request	body		checklistsdk.CreateChecklistRequest	true	"title and items"
//	@Success		200		{object}	checklistsdk.Checklist				"the new checklist"
//	@Failure		400		{object}	checklistsdk.APIError				"validation_error, bad_request"
//	@Failure		401		{object}	checklistsdk.APIError				"invalid_token"
//	@Router			/checklists [post].
func (h *ChecklistsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checklistsdk.CreateChecklistRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w)
		return
	}

	c, err := h.ChecklistService.Create(ctx, httpx.UserIDFromContext(ctx), req.Title, fromItems(req.Items))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toChecklist(c))
}

// HandleList godoc
//
//	@Summary		List checklists
//	@Description	Returns every checklist of the caller in creation order.
//	@Tags			Checklists
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	checklistsdk.ChecklistListResponse	"checklists"
//	@Failure		400	{object}	checklistsdk.APIError				"bad_request"
//	@Failure		401	{object}	checklistsdk.APIError				"invalid_token"
//	@Router			/checklists [get].
func (h *ChecklistsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.ChecklistService.List(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := checklistsdk.ChecklistListResponse{Checklists: make([]checklistsdk.Checklist, len(list))}
	for i, c := range list {
		resp.Checklists[i] = toChecklist(c)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get a checklist
//	@Tags			Checklists
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id	path		string							true	"checklist id"
//	@Success		200	{object}	checklistsdk.ChecklistResponse	"checklist"
//	@Failure		400	{object}	checklistsdk.APIError			"invalid_id"
//	@Failure		401	{object}	checklistsdk.APIError			"invalid_token"
//	@Failure		404	{object}	checklistsdk.APIError			"not_found"
//	@Router			/checklists/{id} [get].
func (h *ChecklistsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.ChecklistService.Get(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, checklistsdk.ChecklistResponse{Checklist: toChecklist(c)})
}

// HandleUpdate godoc
//
//	@Summary		Update a checklist
//	@Description	Applies title, completed and items from the body. Leaving completed out marks the checklist incomplete. Items replace the stored items wholesale.
//	@Tags			Checklists
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id		path		string								true	"checklist id"
//	@Param			request	body		checklistsdk.UpdateChecklistRequest	true	"fields to change"
//	@Success		200		{object}	checklistsdk.ChecklistResponse		"checklist"
//	@Failure		400		{object}	checklistsdk.APIError				"invalid_id, validation_error, bad_request"
//	@Failure		401		{object}	checklistsdk.APIError				"invalid_token"
//	@Failure		404		{object}	checklistsdk.APIError				"not_found"
//	@Router			/checklists/{id} [patch].
func (h *ChecklistsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checklistsdk.UpdateChecklistRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w)
		return
	}

	patch := domain.Patch{Title: req.Title, Completed: req.Completed}
	if req.Items != nil {
		items := fromItems(*req.Items)
		patch.Items = &items
	}

	c, err := h.ChecklistService.Update(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, checklistsdk.ChecklistResponse{Checklist: toChecklist(c)})
}

// HandleDelete godoc
//
//	@Summary		Delete a checklist
//	@Description	Removes the checklist and returns it as it was.
//	@Tags			Checklists
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id	path		string							true	"checklist id"
//	@Success		200	{object}	checklistsdk.ChecklistResponse	"deleted checklist"
//	@Failure		400	{object}	checklistsdk.APIError			"invalid_id"
//	@Failure		401	{object}	checklistsdk.APIError			"invalid_token"
//	@Failure		404	{object}	checklistsdk.APIError			"not_found"
//	@Router			/checklists/{id} [delete].
func (h *ChecklistsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.ChecklistService.Delete(ctx, r.PathValue("id"), httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, checklistsdk.ChecklistResponse{Checklist: toChecklist(c)})
}
