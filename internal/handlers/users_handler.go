package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"croner/backend/internal/events"
	"croner/backend/internal/repositories"
	"croner/backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UsersHandler serves the /user endpoints.
type UsersHandler struct {
	Repo   UsersRepository
	Tokens TokenIssuer
	Events *events.Publisher
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	RequesterID string `json:"requester_id"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type deleteUserRequest struct {
	UserID string `json:"user_id"`
}

// Create registers a user. The email must belong to the organisation (carry
// the "croner" marker) and look like an address; rule order is fixed:
// missing fields, then membership, then format.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.Email) || utils.IsBlank(req.Password) || utils.IsBlank(req.Role) {
		utils.Fail(w, http.StatusBadRequest, "Password, Email or Role are missing")
		return
	}
	if !strings.Contains(req.Email, "croner") {
		utils.Fail(w, http.StatusBadRequest, "You should be joining only if you are part of the right organisation")
		return
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		utils.Fail(w, http.StatusBadRequest, "Email invalid")
		return
	}

	if existing, err := h.Repo.FindOneByEmail(req.Email); err == nil && existing != nil {
		utils.Fail(w, http.StatusForbidden, "This user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Something went wrong during the user's creation")
		return
	}

	user, err := h.Repo.Create(req.Email, string(hash), req.Role)
	if err != nil {
		// the unique index closes the pre-check race
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.Fail(w, http.StatusForbidden, "This user already exists")
			return
		}
		utils.Fail(w, http.StatusNotFound, "Something went wrong during the user's creation")
		return
	}

	token, ok := mintToken(w, h.Tokens, user.UserID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "user", "created", user.UserID)
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
		"success": true,
	})
}

// Authenticate checks credentials and issues a token. Success is 201, not
// 200; callers depend on it.
func (h *UsersHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.Email) || utils.IsBlank(req.Password) {
		utils.Fail(w, http.StatusBadRequest, "Email, Password are missing")
		return
	}

	user, err := h.Repo.FindOneByEmail(req.Email)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find user")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.Fail(w, http.StatusUnauthorized, "Passwords do not match")
		return
	}

	token, ok := mintToken(w, h.Tokens, user.UserID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Authentication successful",
		"user":    user,
		"token":   token,
		"success": true,
	})
}

func (h *UsersHandler) FindOneByEmail(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	email := r.URL.Query().Get("email")

	if utils.IsBlank(email) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing requester_id or email")
		return
	}

	user, err := h.Repo.FindOneByEmail(email)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find user")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "User found successfully",
		"user":    user,
		"token":   token,
		"success": true,
	})
}

func (h *UsersHandler) FindOneByID(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	userID := r.URL.Query().Get("user_id")

	if utils.IsBlank(userID) || utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "Missing user_id or requester_id")
		return
	}

	user, err := h.Repo.FindOneByID(userID)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to find user")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "User found successfully",
		"user":    user,
		"token":   token,
		"success": true,
	})
}

// FindAll returns every user. An empty table reads as a miss here, unlike
// the workspace and test listings.
func (h *UsersHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	requesterID := r.URL.Query().Get("requester_id")
	if utils.IsBlank(requesterID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id is missing")
		return
	}

	users, err := h.Repo.FindAll()
	if err != nil || len(users) == 0 {
		utils.Fail(w, http.StatusNotFound, "Failed to find users")
		return
	}

	token, ok := mintToken(w, h.Tokens, requesterID)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Users fetched correctly",
		"users":   users,
		"token":   token,
		"success": true,
	})
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.RequesterID) || utils.IsBlank(req.UserID) {
		utils.Fail(w, http.StatusBadRequest, "requester_id or user_id are missing")
		return
	}

	password := req.Password
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(w, http.StatusNotFound, "Failed to update user")
			return
		}
		password = string(hash)
	}

	user, err := h.Repo.Update(req.UserID, req.Email, password, req.Role)
	if err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to update user")
		return
	}

	token, ok := mintToken(w, h.Tokens, req.RequesterID)
	if !ok {
		return
	}
	h.Events.Mutated(r.Context(), "user", "updated", user.UserID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    user,
		"token":   token,
		"success": true,
	})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if utils.IsBlank(req.UserID) {
		utils.Fail(w, http.StatusBadRequest, "user_id is missing")
		return
	}

	if err := h.Repo.Delete(req.UserID); err != nil {
		utils.Fail(w, http.StatusNotFound, "Failed to delete user")
		return
	}

	h.Events.Mutated(r.Context(), "user", "deleted", req.UserID)
	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "User deleted successfully",
		"success": true,
	})
}
