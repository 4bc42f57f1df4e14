package users

import (
	"context"
	"errors"
	"strings"

	"asset-audit/core/apperror"

	"gorm.io/gorm"
)

// Directory reads users from the database.
type Directory struct {
	db *gorm.DB
}

// NewDirectory creates a user directory.
func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// FindByEmailOrBadge resolves identifier against the e-mail and badge columns.
func (d *Directory) FindByEmailOrBadge(ctx context.Context, identifier string) (*User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperror.Validation("identifier is required")
	}

	var user User
	err := d.db.WithContext(ctx).
		Where("email = ? OR badge = ?", identifier, identifier).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user %s not found", identifier)
	}
	if err != nil {
		return nil, apperror.Dependency("find user", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id.
func (d *Directory) FindByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user %d not found", id)
	}
	if err != nil {
		return nil, apperror.Dependency("find user", err)
	}
	return &user, nil
}

// FindByIDs returns the users whose id is in ids. Unknown ids are omitted.
func (d *Directory) FindByIDs(ctx context.Context, ids []uint) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	var users []User
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, apperror.Dependency("find users", err)
	}
	return users, nil
}

// List returns every user ordered by name.
func (d *Directory) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := d.db.WithContext(ctx).Order("first_name, last_name, id").Find(&users).Error; err != nil {
		return nil, apperror.Dependency("list users", err)
	}
	return users, nil
}
