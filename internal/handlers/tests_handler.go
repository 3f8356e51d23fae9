package handlers

import (
	"encoding/json"
	"net/http"

	"croner/backend/internal/events"
	"croner/backend/internal/utils"
)

// TestsHandler serves the /test endpoints. Every mutation here sits behind
// the token middleware.
type TestsHandler struct {
	Repo   TestsRepository
	Tokens TokenIssuer
	Events *events.Publisher
}

type createTestRequest struct {
	RequesterID string   `json:"requester_id"`
	AdminID     string   `json:"admin_id"`
	WorkspaceID string   `json:"workspace_id"`
	Subjects    []string `json:"subjects"`
}

type updateTestRequest struct {
	RequesterID string   `json:"requester_id"`
	TestID      string   `json:"test_id"`
	AdminID     string   `json:"admin_id"`
	WorkspaceID string   `json:"workspace_id"`
	Subjects    []string `json:"subjects"`
}

type deleteTestRequest struct {
	RequesterID string `json:"requester_id"`
	TestID      string `json:"test_id"`
}

func (h *TestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.AdminID) ||
		utils.IsBlank(req.WorkspaceID) || len(req.Subjects) == 0 {
		utils.Fail(w, http.StatusBadRequest, "requester_id, admin_id, workspace_id or Subjects are missing")
		return
	}

	test, err := h.Repo.Create(req.AdminID, req.WorkspaceID, req.Subjects)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Something went wrong with your test creation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "test", "created", test.TestID)
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Test created successfully",
		"test":    test,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) FindOneByID(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	testID := r.URL.Query().Get("test_id")

	if utils.IsBlank(testID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing test_id or requester_id")
		return
	}

	test, err := h.Repo.FindOneByID(testID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find test")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Test found successfully",
		"test":    test,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	if utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id")
		return
	}

	tests, err := h.Repo.FindAll()
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find tests")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Tests fetched correctly",
		"tests":   tests,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) FindAllByAdmin(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	adminID := r.URL.Query().Get("admin_id")

	if utils.IsBlank(adminID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing admin_id or requester_id")
		return
	}

	tests, err := h.Repo.FindAllByAdmin(adminID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find tests")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Tests fetched correctly",
		"tests":   tests,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) FindAllByWorkspace(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	workspaceID := r.URL.Query().Get("workspace_id")

	if utils.IsBlank(workspaceID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing workspace_id or requester_id")
		return
	}

	tests, err := h.Repo.FindAllByWorkspace(workspaceID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find tests")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Tests fetched correctly",
		"tests":   tests,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.TestID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or test_id are missing")
		return
	}

	test, err := h.Repo.Update(req.TestID, req.AdminID, req.WorkspaceID, req.Subjects)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to update test")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "test", "updated", test.TestID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Test updated successfully",
		"test":    test,
		"token":   token,
		"success": true,
	})
}

func (h *TestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.TestID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or test_id are missing")
		return
	}

	if err := h.Repo.Delete(req.TestID); err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to delete test")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "test", "deleted", req.TestID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Test deleted successfully",
		"token":   token,
		"success": true,
	})
}
