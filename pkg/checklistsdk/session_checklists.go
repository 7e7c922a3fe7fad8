package checklistsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateChecklist creates a checklist owned by the session's user.
func (s *Session) CreateChecklist(ctx context.Context, req CreateChecklistRequest) (*Checklist, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/checklists", req)
	if err != nil {
		return nil, err
	}

	var c Checklist
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListChecklists returns the user's checklists in creation order.
func (s *Session) ListChecklists(ctx context.Context) ([]Checklist, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/checklists", nil)
	if err != nil {
		return nil, err
	}

	var list ChecklistListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Checklists, nil
}

// GetChecklist fetches one checklist.
func (s *Session) GetChecklist(ctx context.Context, id string) (*Checklist, error) {
	return s.checklistRequest(ctx, http.MethodGet, id, nil)
}

// UpdateChecklist applies req and returns the updated checklist.
func (s *Session) UpdateChecklist(ctx context.Context, id string, req UpdateChecklistRequest) (*Checklist, error) {
	return s.checklistRequest(ctx, http.MethodPatch, id, req)
}

// DeleteChecklist deletes a checklist and returns it as it was.
func (s *Session) DeleteChecklist(ctx context.Context, id string) (*Checklist, error) {
	return s.checklistRequest(ctx, http.MethodDelete, id, nil)
}

func (s *Session) checklistRequest(ctx context.Context, method, id string, payload any) (*Checklist, error) {
	resp, err := s.doAuthRequest(ctx, method, "/checklists/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, err
	}

	var wrapped ChecklistResponse
	if err := decodeJSON(resp, &wrapped, http.StatusOK); err != nil {
		return nil, err
	}
	return &wrapped.Checklist, nil
}
