package repositories

import (
	"errors"

	"croner/backend/internal/models"
	"croner/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkspacesRepository owns the workspaces table. The name column carries a
// unique index, so a create racing past the handler's pre-check still fails
// with ErrDuplicate instead of inserting a second row.
type WorkspacesRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (r *WorkspacesRepository) Create(adminID, name string) (*models.Workspace, error) {
	if adminID == "" || name == "" {
		return nil, ErrMissingInput
	}

	workspace := &models.Workspace{
		WorkspaceID: utils.GenerateID("workspace"),
		AdminID:     adminID,
		Name:        name,
		GuestIDs:    []string{},
		TestIDs:     []string{},
	}
	if err := r.DB.Create(workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, storageError(r.Logger, "insert workspace", err)
	}
	return r.FindOneByID(workspace.WorkspaceID)
}

func (r *WorkspacesRepository) FindOneByName(name string) (*models.Workspace, error) {
	if name == "" {
		return nil, ErrMissingInput
	}

	var workspace models.Workspace
	if err := r.DB.First(&workspace, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query workspace by name", err)
	}
	return &workspace, nil
}

func (r *WorkspacesRepository) FindOneByID(workspaceID string) (*models.Workspace, error) {
	if workspaceID == "" {
		return nil, ErrMissingInput
	}

	var workspace models.Workspace
	if err := r.DB.First(&workspace, "workspace_id = ?", workspaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query workspace by id", err)
	}
	return &workspace, nil
}

func (r *WorkspacesRepository) FindAll() ([]models.Workspace, error) {
	workspaces := []models.Workspace{}
	if err := r.DB.Find(&workspaces).Error; err != nil {
		return nil, storageError(r.Logger, "query workspaces", err)
	}
	return workspaces, nil
}

func (r *WorkspacesRepository) FindAllByAdmin(adminID string) ([]models.Workspace, error) {
	if adminID == "" {
		return nil, ErrMissingInput
	}

	workspaces := []models.Workspace{}
	if err := r.DB.Where("admin_id = ?", adminID).Find(&workspaces).Error; err != nil {
		return nil, storageError(r.Logger, "query workspaces by admin", err)
	}
	return workspaces, nil
}

// Update applies the supplied fields in one write. Blank strings and empty
// lists are left unchanged, so membership lists can only be replaced, never
// cleared.
func (r *WorkspacesRepository) Update(workspaceID, adminID, name string, guestIDs, testIDs []string) (*models.Workspace, error) {
	if workspaceID == "" {
		return nil, ErrMissingInput
	}

	updates := models.Workspace{AdminID: adminID, Name: name}
	changed := adminID != "" || name != ""
	if len(guestIDs) != 0 {
		updates.GuestIDs = guestIDs
		changed = true
	}
	if len(testIDs) != 0 {
		updates.TestIDs = testIDs
		changed = true
	}

	if changed {
		err := r.DB.Model(&models.Workspace{}).Where("workspace_id = ?", workspaceID).Updates(&updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, storageError(r.Logger, "update workspace", err)
		}
	}
	return r.FindOneByID(workspaceID)
}

// Delete removes the workspace row only. Tests, invitations and colors that
// reference it are left behind on purpose.
func (r *WorkspacesRepository) Delete(workspaceID string) error {
	if workspaceID == "" {
		return ErrMissingInput
	}

	if err := r.DB.Where("workspace_id = ?", workspaceID).Delete(&models.Workspace{}).Error; err != nil {
		return storageError(r.Logger, "delete workspace", err)
	}
	return nil
}
