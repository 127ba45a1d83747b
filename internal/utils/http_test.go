package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-register-form/models"
)

func TestWriteJSON_FieldState(t *testing.T) {
	w := httptest.NewRecorder()
	state := models.FieldState{
		ID:       models.FieldUsername,
		Value:    "ab",
		Validity: models.ValidityInvalid,
		Error:    "minimum 4 characters (letters, digits, or underscore)",
	}

	n, err := WriteJSON(w, state, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "username",
		"value": "ab",
		"validity": "invalid",
		"error": "minimum 4 characters (letters, digits, or underscore)"
	}`, w.Body.String())
}

func TestWriteJSON_UnsetValidityIsEmptyString(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.FieldState{ID: models.FieldPhone}, http.StatusOK)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"phone","value":"","validity":"","error":""}`, w.Body.String())
}

func TestWriteJSON_RejectedSubmit(t *testing.T) {
	w := httptest.NewRecorder()
	result := models.SubmitResult{
		State: models.SubmitRejected,
		Fields: []models.FieldState{
			{ID: models.FieldEmail, Value: "a@b", Validity: models.ValidityInvalid, Error: "invalid email address"},
			{ID: models.FieldPhone, Validity: models.ValidityValid},
		},
	}

	_, err := WriteJSON(w, result, http.StatusUnprocessableEntity)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{
		"state": "rejected",
		"fields": [
			{"id": "email", "value": "a@b", "validity": "invalid", "error": "invalid email address"},
			{"id": "phone", "value": "", "validity": "valid", "error": ""}
		],
		"cookieWritten": false
	}`, w.Body.String())
}

func TestWriteJSON_AcceptedSubmitWithNotice(t *testing.T) {
	w := httptest.NewRecorder()
	result := models.SubmitResult{
		State:          models.SubmitAccepted,
		CookieNotice:   "cookies are disabled in this browser",
		Acknowledgment: "registration completed successfully (simulated)",
	}

	_, err := WriteJSON(w, result, http.StatusOK)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"state": "accepted",
		"fields": null,
		"cookieWritten": false,
		"cookieNotice": "cookies are disabled in this browser",
		"acknowledgment": "registration completed successfully (simulated)"
	}`, w.Body.String())
}

func TestWriteJSON_EscapesMarkup(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"username": "<b>bob</b>"}, http.StatusOK)

	require.NoError(t, err)
	assert.NotContains(t, w.Body.String(), "<b>")
	assert.JSONEq(t, `{"username":"<b>bob</b>"}`, w.Body.String())
}

func TestWriteJSON_UnmarshalableData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
