package services

import (
	"context"

	"github.com/localnerve/legalaid-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Identity is the identity-provider view of a user, as received from a
// validated session.
type Identity struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	// Role is set only when the provider asserts a platform role.
	Role models.Role
}

// GetUser retrieves a user by id.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := reader(ctx, db, "getUser").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpsertUser inserts the identity, or on id conflict overwrites the provided
// profile fields and refreshes updated_at.
func UpsertUser(ctx context.Context, db *gorm.DB, identity Identity) (*models.User, error) {
	if identity.ID == "" {
		return nil, invalid("id", "is required")
	}
	if identity.Role != "" && !identity.Role.Valid() {
		return nil, invalid("role", "unknown role %q", identity.Role)
	}

	user := models.User{
		ID:              identity.ID,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
		Role:            identity.Role,
	}

	columns := []string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}
	if identity.Role != "" {
		columns = append(columns, "role")
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&user).Error
	if err != nil {
		return nil, translateError(err)
	}

	return GetUser(ctx, db, identity.ID)
}
