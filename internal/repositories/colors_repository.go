package repositories

import (
	"errors"

	"croner/backend/internal/models"
	"croner/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ColorsRepository owns the colors table.
type ColorsRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (r *ColorsRepository) Create(workspaceID, guestID, hex string) (*models.Color, error) {
	if workspaceID == "" || guestID == "" || hex == "" {
		return nil, ErrMissingInput
	}

	color := &models.Color{
		ColorID:     utils.GenerateID("color"),
		WorkspaceID: workspaceID,
		GuestID:     guestID,
		Hex:         hex,
	}
	if err := r.DB.Create(color).Error; err != nil {
		return nil, storageError(r.Logger, "insert color", err)
	}
	return r.FindOneByID(color.ColorID)
}

func (r *ColorsRepository) FindOneByID(colorID string) (*models.Color, error) {
	if colorID == "" {
		return nil, ErrMissingInput
	}

	var color models.Color
	if err := r.DB.First(&color, "color_id = ?", colorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query color by id", err)
	}
	return &color, nil
}

func (r *ColorsRepository) FindOneByHex(hex string) (*models.Color, error) {
	if hex == "" {
		return nil, ErrMissingInput
	}

	var color models.Color
	if err := r.DB.First(&color, "hex = ?", hex).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query color by hex", err)
	}
	return &color, nil
}

func (r *ColorsRepository) FindAll() ([]models.Color, error) {
	colors := []models.Color{}
	if err := r.DB.Find(&colors).Error; err != nil {
		return nil, storageError(r.Logger, "query colors", err)
	}
	return colors, nil
}

func (r *ColorsRepository) FindAllByWorkspace(workspaceID string) ([]models.Color, error) {
	if workspaceID == "" {
		return nil, ErrMissingInput
	}

	colors := []models.Color{}
	if err := r.DB.Where("workspace_id = ?", workspaceID).Find(&colors).Error; err != nil {
		return nil, storageError(r.Logger, "query colors by workspace", err)
	}
	return colors, nil
}

func (r *ColorsRepository) Update(colorID, workspaceID, guestID, hex string) (*models.Color, error) {
	if colorID == "" {
		return nil, ErrMissingInput
	}

	updates := models.Color{WorkspaceID: workspaceID, GuestID: guestID, Hex: hex}
	if workspaceID != "" || guestID != "" || hex != "" {
		err := r.DB.Model(&models.Color{}).Where("color_id = ?", colorID).Updates(&updates).Error
		if err != nil {
			return nil, storageError(r.Logger, "update color", err)
		}
	}
	return r.FindOneByID(colorID)
}

func (r *ColorsRepository) Delete(colorID string) error {
	if colorID == "" {
		return ErrMissingInput
	}

	if err := r.DB.Where("color_id = ?", colorID).Delete(&models.Color{}).Error; err != nil {
		return storageError(r.Logger, "delete color", err)
	}
	return nil
}
