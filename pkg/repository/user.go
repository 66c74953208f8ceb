package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("uuid = ?", uuid).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.UUID == uuid.Nil {
		user.UUID = uuid.New()
	}

	if user.Role == "" {
		user.Role = model.RoleUser
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, int64, error) {
	var (
		users []*model.User
		total int64
	)

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := r.DB.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		r.Logger.Error("error listing users", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return users, total, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.DB.WithContext(ctx).Model(&model.User{ID: userID}).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetFollowedAuthors returns the authors userID follows, most recent first.
func (r *Repository) GetFollowedAuthors(ctx context.Context, userID uint, limit, offset int) ([]*model.User, int64, error) {
	var (
		authors []*model.User
		total   int64
	)

	filtered := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&model.User{}).
			Joins("INNER JOIN follows f ON f.author_id = users.id").
			Where("f.user_id = ?", userID)
	}

	if result := filtered().Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := filtered().Order("f.created_at DESC").Limit(limit).Offset(offset).Find(&authors)
	if result.Error != nil {
		r.Logger.Error("error getting followed authors", zap.Uint("user_id", userID), zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return authors, total, nil
}
