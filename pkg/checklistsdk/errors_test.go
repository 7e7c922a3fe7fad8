package checklistsdk_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/checklistsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	checklistsdk.NewValidationError(map[string]string{"title": "is required"}).WriteError(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t,
		`{"code":"validation_error","message":"request validation failed","details":{"title":"is required"}}`,
		rec.Body.String())
}

func TestAPIErrorIs(t *testing.T) {
	decoded := &checklistsdk.APIError{StatusCode: 404, Code: checklistsdk.ErrorCodeNotFound, Message: "other text"}

	require.ErrorIs(t, decoded, checklistsdk.ErrNotFound)
	require.ErrorIs(t, fmt.Errorf("get: %w", decoded), checklistsdk.ErrNotFound)
	require.NotErrorIs(t, decoded, checklistsdk.ErrInvalidID)
}

func TestAPIErrorMessage(t *testing.T) {
	require.Equal(t, "not_found: checklist not found", checklistsdk.ErrNotFound.Error())
	require.Contains(t, checklistsdk.NewValidationError(map[string]string{"email": "is required"}).Error(), "email")
}
