package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"croner/backend/internal/events"
	"croner/backend/internal/repositories"
	"croner/backend/internal/utils"
)

// WorkspacesHandler serves the /workspace endpoints.
type WorkspacesHandler struct {
	Repo   WorkspacesRepository
	Tokens TokenIssuer
	Events *events.Publisher
}

type createWorkspaceRequest struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
}

type updateWorkspaceRequest struct {
	RequesterID string   `json:"requester_id"`
	WorkspaceID string   `json:"workspace_id"`
	AdminID     string   `json:"admin_id"`
	Name        string   `json:"name"`
	GuestIDs    []string `json:"guest_ids"`
	TestIDs     []string `json:"test_ids"`
}

type deleteWorkspaceRequest struct {
	RequesterID string `json:"requester_id"`
	WorkspaceID string `json:"workspace_id"`
}

// Create makes a workspace for an admin. Admin capability is signalled by
// the id itself. The name pre-check keeps the original contract; the unique
// index on name is what actually prevents a duplicate slipping through
// between the check and the insert.
func (h *WorkspacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.AdminID) || utils.IsBlank(req.Name) {
		utils.Fail(w, http.StatusBadRequest, "admin_id or Name are missing")
		return
	}
	if !strings.Contains(req.AdminID, "admin") {
		utils.Fail(w, http.StatusUnauthorized, "Your role does not allow you to create workspaces")
		return
	}

	if existing, err := h.Repo.FindOneByName(req.Name); err == nil && existing != nil {
		utils.Fail(w, http.StatusForbidden, "A workspace with this name already exists")
		return
	}

	workspace, err := h.Repo.Create(req.AdminID, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Fail(w, http.StatusForbidden, "A workspace with this name already exists")
			return
		}
		utils.Fail(w, http.StatusNotFound, "Something went wrong with your workspace creation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.AdminID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "workspace", "created", workspace.WorkspaceID)
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message":   "Workspace created successfully",
		"workspace": workspace,
		"token":     token,
		"success":   true,
	})
}

func (h *WorkspacesHandler) FindOneByName(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	name := r.URL.Query().Get("name")

	if utils.IsBlank(name) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or Name are missing")
		return
	}

	workspace, err := h.Repo.FindOneByName(name)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find workspace")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Workspace found successfully",
		"workspace": workspace,
		"token":     token,
		"success":   true,
	})
}

func (h *WorkspacesHandler) FindOneByID(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	workspaceID := r.URL.Query().Get("workspace_id")

	if utils.IsBlank(workspaceID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing workspace_id or requester_id")
		return
	}

	workspace, err := h.Repo.FindOneByID(workspaceID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find workspace")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Workspace found successfully",
		"workspace": workspace,
		"token":     token,
		"success":   true,
	})
}

// FindAll returns every workspace; an empty list is a valid result here.
func (h *WorkspacesHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	if utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id")
		return
	}

	workspaces, err := h.Repo.FindAll()
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find workspaces")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":    "Workspaces fetched correctly",
		"workspaces": workspaces,
		"token":      token,
		"success":    true,
	})
}

func (h *WorkspacesHandler) FindAllByAdmin(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	adminID := r.URL.Query().Get("admin_id")

	if utils.IsBlank(adminID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing admin_id or requester_id")
		return
	}

	workspaces, err := h.Repo.FindAllByAdmin(adminID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find workspaces")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":    "Workspaces fetched correctly",
		"workspaces": workspaces,
		"token":      token,
		"success":    true,
	})
}

func (h *WorkspacesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.WorkspaceID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or workspace_id are missing")
		return
	}

	workspace, err := h.Repo.Update(req.WorkspaceID, req.AdminID, req.Name, req.GuestIDs, req.TestIDs)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to update workspace")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "workspace", "updated", workspace.WorkspaceID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Workspace updated successfully",
		"workspace": workspace,
		"token":     token,
		"success":   true,
	})
}

// Delete removes the workspace row. Dependent tests, invitations and colors
// are not cascaded.
func (h *WorkspacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.WorkspaceID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or workspace_id are missing")
		return
	}

	if err := h.Repo.Delete(req.WorkspaceID); err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to delete workspace")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "workspace", "deleted", req.WorkspaceID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Workspace deleted successfully",
		"token":   token,
		"success": true,
	})
}
