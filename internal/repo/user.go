package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tHeiieh/inventory-api/internal/models"
	"github.com/tHeiieh/inventory-api/internal/transport"
)

func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserAlreadyExists
	}
	return nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PatchUser merges only the fields present in the request. A username change
// that collides with another user fails with ErrUserAlreadyExists before the
// unique index gets a chance to abort the write.
func (r *GormRepo) PatchUser(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		var other models.User
		err := r.DB.WithContext(ctx).Where("username = ? AND id <> ?", *req.Username, id).First(&other).Error
		switch {
		case err == nil:
			return nil, ErrUserAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := r.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
