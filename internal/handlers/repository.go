package handlers

import "croner/backend/internal/models"

// The interfaces below capture exactly the persistence operations the
// handlers consume; the concrete implementations live in
// internal/repositories.

type UsersRepository interface {
	Create(email, password, role string) (*models.User, error)
	FindOneByEmail(email string) (*models.User, error)
	FindOneByID(userID string) (*models.User, error)
	FindAll() ([]models.User, error)
	Update(userID, email, password, role string) (*models.User, error)
	Delete(userID string) error
}

type WorkspacesRepository interface {
	Create(adminID, name string) (*models.Workspace, error)
	FindOneByName(name string) (*models.Workspace, error)
	FindOneByID(workspaceID string) (*models.Workspace, error)
	FindAll() ([]models.Workspace, error)
	FindAllByAdmin(adminID string) ([]models.Workspace, error)
	Update(workspaceID, adminID, name string, guestIDs, testIDs []string) (*models.Workspace, error)
	Delete(workspaceID string) error
}

type TestsRepository interface {
	Create(adminID, workspaceID string, subjects []string) (*models.Test, error)
	FindOneByID(testID string) (*models.Test, error)
	FindAll() ([]models.Test, error)
	FindAllByAdmin(adminID string) ([]models.Test, error)
	FindAllByWorkspace(workspaceID string) ([]models.Test, error)
	Update(testID, adminID, workspaceID string, subjects []string) (*models.Test, error)
	Delete(testID string) error
}

type InvitationsRepository interface {
	Create(itemID, adminID, guestID, invType string) (*models.Invitation, error)
	FindOneByID(invitationID string) (*models.Invitation, error)
	FindAll() ([]models.Invitation, error)
	FindAllByGuest(guestID string) ([]models.Invitation, error)
	FindAllByItem(itemID string) ([]models.Invitation, error)
	FindAllByAdmin(adminID string) ([]models.Invitation, error)
	Update(invitationID, itemID, adminID, guestID, invType, status string) (*models.Invitation, error)
	Delete(invitationID string) error
}

type ColorsRepository interface {
	Create(workspaceID, guestID, hex string) (*models.Color, error)
	FindOneByID(colorID string) (*models.Color, error)
	FindOneByHex(hex string) (*models.Color, error)
	FindAll() ([]models.Color, error)
	FindAllByWorkspace(workspaceID string) ([]models.Color, error)
	Update(colorID, workspaceID, guestID, hex string) (*models.Color, error)
	Delete(colorID string) error
}

// TokenIssuer mints the credential attached to every successful response.
type TokenIssuer interface {
	GenerateToken(subjectID string) (string, error)
}
