package handlers

import (
	"net/http"

	"croner/backend/internal/utils"
)

// mintToken issues the response token for the acting identity. Signing only
// fails if the process is misconfigured, so the failure body is generic.
func mintToken(w http.ResponseWriter, issuer TokenIssuer, subjectID string) (string, bool) {
	token, err := issuer.GenerateToken(subjectID)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to generate token")
		return "", false
	}
	return token, true
}
