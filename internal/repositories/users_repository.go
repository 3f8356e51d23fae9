package repositories

import (
	"errors"

	"croner/backend/internal/models"
	"croner/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UsersRepository owns the users table. Ids are generated as the role
// followed by random digits, so an id itself signals capability.
type UsersRepository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func (r *UsersRepository) Create(email, password, role string) (*models.User, error) {
	if email == "" || password == "" || role == "" {
		return nil, ErrMissingInput
	}

	user := &models.User{
		UserID:   utils.GenerateID(role),
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := r.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, storageError(r.Logger, "insert user", err)
	}
	return r.FindOneByID(user.UserID)
}

func (r *UsersRepository) FindOneByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, ErrMissingInput
	}

	var user models.User
	if err := r.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query user by email", err)
	}
	return &user, nil
}

func (r *UsersRepository) FindOneByID(userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrMissingInput
	}

	var user models.User
	if err := r.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(r.Logger, "query user by id", err)
	}
	return &user, nil
}

func (r *UsersRepository) FindAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.DB.Find(&users).Error; err != nil {
		return nil, storageError(r.Logger, "query users", err)
	}
	return users, nil
}

// Update applies the non-blank fields in a single write, then re-fetches the
// canonical row. Blank means "leave unchanged"; there is no way to clear a
// column through this contract.
func (r *UsersRepository) Update(userID, email, password, role string) (*models.User, error) {
	if userID == "" {
		return nil, ErrMissingInput
	}

	updates := models.User{Email: email, Password: password, Role: role}
	if email != "" || password != "" || role != "" {
		err := r.DB.Model(&models.User{}).Where("user_id = ?", userID).Updates(&updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, storageError(r.Logger, "update user", err)
		}
	}
	return r.FindOneByID(userID)
}

// Delete removes the row if present. Deleting an id that matches nothing
// still succeeds; the caller cannot tell the difference.
func (r *UsersRepository) Delete(userID string) error {
	if userID == "" {
		return ErrMissingInput
	}

	if err := r.DB.Where("user_id = ?", userID).Delete(&models.User{}).Error; err != nil {
		return storageError(r.Logger, "delete user", err)
	}
	return nil
}
