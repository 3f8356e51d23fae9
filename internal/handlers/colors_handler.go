package handlers

import (
	"encoding/json"
	"net/http"

	"croner/backend/internal/events"
	"croner/backend/internal/utils"
)

// ColorsHandler serves the /color endpoints.
type ColorsHandler struct {
	Repo   ColorsRepository
	Tokens TokenIssuer
	Events *events.Publisher
}

type createColorRequest struct {
	RequesterID string `json:"requester_id"`
	WorkspaceID string `json:"workspace_id"`
	GuestID     string `json:"guest_id"`
	Hex         string `json:"hex"`
}

type updateColorRequest struct {
	RequesterID string `json:"requester_id"`
	ColorID     string `json:"color_id"`
	WorkspaceID string `json:"workspace_id"`
	GuestID     string `json:"guest_id"`
	Hex         string `json:"hex"`
}

type deleteColorRequest struct {
	RequesterID string `json:"requester_id"`
	ColorID     string `json:"color_id"`
}

func (h *ColorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.WorkspaceID) ||
		utils.IsBlank(req.GuestID) || utils.IsBlank(req.Hex) {
		utils.Fail(w, http.StatusBadRequest, "requester_id, workspace_id, guest_id or hex are missing")
		return
	}

	color, err := h.Repo.Create(req.WorkspaceID, req.GuestID, req.Hex)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Something went wrong with your color creation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "color", "created", color.ColorID)
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Color created successfully",
		"color":   color,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) FindOneByID(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	colorID := r.URL.Query().Get("color_id")

	if utils.IsBlank(requesterID) || utils.IsBlank(colorID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id or color_id")
		return
	}

	color, err := h.Repo.FindOneByID(colorID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find color")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Color found successfully",
		"color":   color,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) FindOneByHex(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	hex := r.URL.Query().Get("hex")

	if utils.IsBlank(requesterID) || utils.IsBlank(hex) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id or hex")
		return
	}

	color, err := h.Repo.FindOneByHex(hex)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find color")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Color found successfully",
		"color":   color,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	if utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id")
		return
	}

	colors, err := h.Repo.FindAll()
	if err != nil || len(colors) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find colors")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Colors fetched correctly",
		"colors":  colors,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) FindAllByWorkspace(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	workspaceID := r.URL.Query().Get("workspace_id")

	if utils.IsBlank(workspaceID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing workspace_id or requester_id")
		return
	}

	colors, err := h.Repo.FindAllByWorkspace(workspaceID)
	if err != nil || len(colors) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find colors")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Colors fetched correctly",
		"colors":  colors,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.ColorID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or color_id are missing")
		return
	}

	color, err := h.Repo.Update(req.ColorID, req.WorkspaceID, req.GuestID, req.Hex)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to update color")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "color", "updated", color.ColorID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Color updated successfully",
		"color":   color,
		"token":   token,
		"success": true,
	})
}

func (h *ColorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.ColorID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or color_id are missing")
		return
	}

	if err := h.Repo.Delete(req.ColorID); err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to delete color")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "color", "deleted", req.ColorID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Color deleted successfully",
		"token":   token,
		"success": true,
	})
}
