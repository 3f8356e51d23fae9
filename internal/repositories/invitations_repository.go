package repositories

import (
	"errors"

	"croner/backend/internal/models"
	"croner/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvitationsRepository owns the invitations table. Every new invitation
// starts at pending; only Update moves it, and Update deliberately accepts
// any non-blank status string.
type InvitationsRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (r *InvitationsRepository) Create(itemID, adminID, guestID, invType string) (*models.Invitation, error) {
	if itemID == "" || adminID == "" || guestID == "" || invType == "" {
		return nil, ErrMissingInput
	}

	invitation := &models.Invitation{
		InvitationID: utils.GenerateID("invitation"),
		ItemID:       itemID,
		AdminID:      adminID,
		GuestID:      guestID,
		Type:         invType,
		Status:       models.InvitationPending,
	}
	if err := r.DB.Create(invitation).Error; err != nil {
		return nil, storageError(r.Logger, "insert invitation", err)
	}
	return r.FindOneByID(invitation.InvitationID)
}

func (r *InvitationsRepository) FindOneByID(invitationID string) (*models.Invitation, error) {
	if invitationID == "" {
		return nil, ErrMissingInput
	}

	var invitation models.Invitation
	if err := r.DB.First(&invitation, "invitation_id = ?", invitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query invitation by id", err)
	}
	return &invitation, nil
}

func (r *InvitationsRepository) FindAll() ([]models.Invitation, error) {
	invitations := []models.Invitation{}
	if err := r.DB.Find(&invitations).Error; err != nil {
		return nil, storageError(r.Logger, "query invitations", err)
	}
	return invitations, nil
}

func (r *InvitationsRepository) FindAllByGuest(guestID string) ([]models.Invitation, error) {
	if guestID == "" {
		return nil, ErrMissingInput
	}

	invitations := []models.Invitation{}
	if err := r.DB.Where("guest_id = ?", guestID).Find(&invitations).Error; err != nil {
		return nil, storageError(r.Logger, "query invitations by guest", err)
	}
	return invitations, nil
}

func (r *InvitationsRepository) FindAllByItem(itemID string) ([]models.Invitation, error) {
	if itemID == "" {
		return nil, ErrMissingInput
	}

	invitations := []models.Invitation{}
	if err := r.DB.Where("item_id = ?", itemID).Find(&invitations).Error; err != nil {
		return nil, storageError(r.Logger, "query invitations by item", err)
	}
	return invitations, nil
}

func (r *InvitationsRepository) FindAllByAdmin(adminID string) ([]models.Invitation, error) {
	if adminID == "" {
		return nil, ErrMissingInput
	}

	invitations := []models.Invitation{}
	if err := r.DB.Where("admin_id = ?", adminID).Find(&invitations).Error; err != nil {
		return nil, storageError(r.Logger, "query invitations by admin", err)
	}
	return invitations, nil
}

func (r *InvitationsRepository) Update(invitationID, itemID, adminID, guestID, invType, status string) (*models.Invitation, error) {
	if invitationID == "" {
		return nil, ErrMissingInput
	}

	updates := models.Invitation{
		ItemID:  itemID,
		AdminID: adminID,
		GuestID: guestID,
		Type:    invType,
		Status:  status,
	}
	if itemID != "" || adminID != "" || guestID != "" || invType != "" || status != "" {
		err := r.DB.Model(&models.Invitation{}).Where("invitation_id = ?", invitationID).Updates(&updates).Error
		if err != nil {
			return nil, storageError(r.Logger, "update invitation", err)
		}
	}
	return r.FindOneByID(invitationID)
}

func (r *InvitationsRepository) Delete(invitationID string) error {
	if invitationID == "" {
		return ErrMissingInput
	}

	if err := r.DB.Where("invitation_id = ?", invitationID).Delete(&models.Invitation{}).Error; err != nil {
		return storageError(r.Logger, "delete invitation", err)
	}
	return nil
}
