package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

// stubIssuer satisfies TokenIssuer without a real signing key.
type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) GenerateToken(subjectID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.token != "" {
		return s.token, nil
	}
	return "token-for-" + subjectID, nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}

func expectFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (body %q)", status, rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != message {
		t.Fatalf("expected message %q, got %q", message, body["message"])
	}
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body["success"])
	}
}
