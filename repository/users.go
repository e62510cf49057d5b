package repository

import (
	"context"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
)

func (r *Repository) UserExists(ctx context.Context, email, username string) (bool, error) {
	var n int64
	err := r.conn(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&n).Error
	return n > 0, errors.Annotate(err, "checking user existence")
}

// FindUserByIdentifier looks a user up by email or username.
func (r *Repository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	var user models.User
	err := r.conn(ctx).Where("email = ? OR username = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return user, notFound(err, "user %q", identifier)
	}
	return user, nil
}

func (r *Repository) FindUser(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.conn(ctx).First(&user, id).Error; err != nil {
		return user, notFound(err, "user %d", id)
	}
	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return errors.Annotate(r.conn(ctx).Create(user).Error, "creating user")
}

// UpdateUserWhere applies updates to the user matching column = value and reports
// whether a row matched.
func (r *Repository) UpdateUserWhere(ctx context.Context, column, value string, updates map[string]any) (bool, error) {
	if value == "" {
		return false, nil
	}
	result := r.conn(ctx).Model(&models.User{}).Where(column+" = ?", value).Updates(updates)
	if result.Error != nil {
		return false, errors.Annotate(result.Error, "updating user")
	}
	return result.RowsAffected > 0, nil
}
