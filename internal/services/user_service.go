package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
)

// ErrUserNotFound is returned when no profile matches the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserService defines the business operations on user profiles.
type UserService interface {
	// UpsertUser inserts the profile, or overwrites all mutable
	// fields of the existing row with the same id. Concurrent
	// upserts for one id resolve last-write-wins in the store.
	UpsertUser(ctx context.Context, u *models.UserProfile) error
	// GetUser fetches one profile by id, ErrUserNotFound when no
	// row matches.
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) UpsertUser(ctx context.Context, u *models.UserProfile) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "photo_url", "location", "pincode",
		}),
	}).Create(u).Error
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
