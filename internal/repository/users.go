package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookdesk/internal/model"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		First(&user, "email = ?", email).Error; err != nil {

		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		First(&user, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &user, nil
}
