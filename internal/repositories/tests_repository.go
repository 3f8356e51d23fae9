package repositories

import (
	"errors"

	"croner/backend/internal/models"
	"croner/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestsRepository owns the tests table.
type TestsRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (r *TestsRepository) Create(adminID, workspaceID string, subjects []string) (*models.Test, error) {
	if adminID == "" || workspaceID == "" || len(subjects) == 0 {
		return nil, ErrMissingInput
	}

	test := &models.Test{
		TestID:      utils.GenerateID("test"),
		AdminID:     adminID,
		WorkspaceID: workspaceID,
		Subjects:    subjects,
	}
	if err := r.DB.Create(test).Error; err != nil {
		return nil, storageError(r.Logger, "insert test", err)
	}
	return r.FindOneByID(test.TestID)
}

func (r *TestsRepository) FindOneByID(testID string) (*models.Test, error) {
	if testID == "" {
		return nil, ErrMissingInput
	}

	var test models.Test
	if err := r.DB.First(&test, "test_id = ?", testID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query test by id", err)
	}
	return &test, nil
}

func (r *TestsRepository) FindAll() ([]models.Test, error) {
	tests := []models.Test{}
	if err := r.DB.Find(&tests).Error; err != nil {
		return nil, storageError(r.Logger, "query tests", err)
	}
	return tests, nil
}

func (r *TestsRepository) FindAllByAdmin(adminID string) ([]models.Test, error) {
	if adminID == "" {
		return nil, ErrMissingInput
	}

	tests := []models.Test{}
	if err := r.DB.Where("admin_id = ?", adminID).Find(&tests).Error; err != nil {
		return nil, storageError(r.Logger, "query tests by admin", err)
	}
	return tests, nil
}

func (r *TestsRepository) FindAllByWorkspace(workspaceID string) ([]models.Test, error) {
	if workspaceID == "" {
		return nil, ErrMissingInput
	}

	tests := []models.Test{}
	if err := r.DB.Where("workspace_id = ?", workspaceID).Find(&tests).Error; err != nil {
		return nil, storageError(r.Logger, "query tests by workspace", err)
	}
	return tests, nil
}

func (r *TestsRepository) Update(testID, adminID, workspaceID string, subjects []string) (*models.Test, error) {
	if testID == "" {
		return nil, ErrMissingInput
	}

	updates := models.Test{AdminID: adminID, WorkspaceID: workspaceID}
	changed := adminID != "" || workspaceID != ""
	if len(subjects) != 0 {
		updates.Subjects = subjects
		changed = true
	}

	if changed {
		err := r.DB.Model(&models.Test{}).Where("test_id = ?", testID).Updates(&updates).Error
		if err != nil {
			return nil, storageError(r.Logger, "update test", err)
		}
	}
	return r.FindOneByID(testID)
}

func (r *TestsRepository) Delete(testID string) error {
	if testID == "" {
		return ErrMissingInput
	}

	if err := r.DB.Where("test_id = ?", testID).Delete(&models.Test{}).Error; err != nil {
		return storageError(r.Logger, "delete test", err)
	}
	return nil
}
