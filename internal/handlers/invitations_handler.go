package handlers

import (
	"encoding/json"
	"net/http"

	"croner/backend/internal/events"
	"croner/backend/internal/utils"
)

// InvitationsHandler serves the /invitation endpoints. Invitations point a
// guest at an item (workspace or test, per the type tag); status moves from
// pending only through Update, and Update does not restrict the new value.
type InvitationsHandler struct {
	Repo   InvitationsRepository
	Tokens TokenIssuer
	Events *events.Publisher
}

type createInvitationRequest struct {
	RequesterID string `json:"requester_id"`
	ItemID      string `json:"item_id"`
	AdminID     string `json:"admin_id"`
	GuestID     string `json:"guest_id"`
	Type        string `json:"type"`
}

type updateInvitationRequest struct {
	RequesterID  string `json:"requester_id"`
	InvitationID string `json:"invitation_id"`
	ItemID       string `json:"item_id"`
	AdminID      string `json:"admin_id"`
	GuestID      string `json:"guest_id"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

type deleteInvitationRequest struct {
	RequesterID  string `json:"requester_id"`
	InvitationID string `json:"invitation_id"`
}

func (h *InvitationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.ItemID) ||
		utils.IsBlank(req.AdminID) || utils.IsBlank(req.GuestID) || utils.IsBlank(req.Type) {
		utils.Fail(w, http.StatusBadRequest, "requester_id, item_id, admin_id, guest_id or Type are missing")
		return
	}

	invitation, err := h.Repo.Create(req.ItemID, req.AdminID, req.GuestID, req.Type)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Something went wrong with your invitation creation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "invitation", "created", invitation.InvitationID)
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message":    "Invitation created successfully",
		"invitation": invitation,
		"token":      token,
		"success":    true,
	})
}

func (h *InvitationsHandler) FindOneByID(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	invitationID := r.URL.Query().Get("invitation_id")

	if utils.IsBlank(requesterID) || utils.IsBlank(invitationID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id or invitation_id")
		return
	}

	invitation, err := h.Repo.FindOneByID(invitationID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find invitation")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":    "Invitation found successfully",
		"invitation": invitation,
		"token":      token,
		"success":    true,
	})
}

// FindAll and the scoped listings below treat an empty result as a miss.
func (h *InvitationsHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	if utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id")
		return
	}

	invitations, err := h.Repo.FindAll()
	if err != nil || len(invitations) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find invitations")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":     "Invitations fetched correctly",
		"invitations": invitations,
		"token":       token,
		"success":     true,
	})
}

func (h *InvitationsHandler) FindAllByGuest(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	guestID := r.URL.Query().Get("guest_id")

	if utils.IsBlank(guestID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing guest_id or requester_id")
		return
	}

	invitations, err := h.Repo.FindAllByGuest(guestID)
	if err != nil || len(invitations) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find invitations")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":     "Invitations fetched correctly",
		"invitations": invitations,
		"token":       token,
		"success":     true,
	})
}

func (h *InvitationsHandler) FindAllByItem(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	itemID := r.URL.Query().Get("item_id")

	if utils.IsBlank(itemID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing item_id or requester_id")
		return
	}

	invitations, err := h.Repo.FindAllByItem(itemID)
	if err != nil || len(invitations) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find invitations")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":     "Invitations fetched correctly",
		"invitations": invitations,
		"token":       token,
		"success":     true,
	})
}

func (h *InvitationsHandler) FindAllByAdmin(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	adminID := r.URL.Query().Get("admin_id")

	if utils.IsBlank(adminID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing admin_id or requester_id")
		return
	}

	invitations, err := h.Repo.FindAllByAdmin(adminID)
	if err != nil || len(invitations) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find invitations")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":     "Invitations fetched correctly",
		"invitations": invitations,
		"token":       token,
		"success":     true,
	})
}

func (h *InvitationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.InvitationID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or invitation_id are missing")
		return
	}

	invitation, err := h.Repo.Update(req.InvitationID, req.ItemID, req.AdminID, req.GuestID, req.Type, req.Status)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to update invitation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "invitation", "updated", invitation.InvitationID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message":    "Invitation updated successfully",
		"invitation": invitation,
		"token":      token,
		"success":    true,
	})
}

func (h *InvitationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.InvitationID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or invitation_id are missing")
		return
	}

	if err := h.Repo.Delete(req.InvitationID); err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to delete invitation")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "invitation", "deleted", req.InvitationID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Invitation deleted successfully",
		"token":   token,
		"success": true,
	})
}
