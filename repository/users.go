// Package repository wraps the GORM queries the controllers need. Keeping
// them here instead of inline in the handlers makes the catalog and
// enrollment semantics testable against an in-memory database.
package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// FindUserByID returns the user or gorm.ErrRecordNotFound.
func FindUserByID(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	err := db.Where("id = ?", id).First(&user).Error
	return user, err
}

// FindActiveUserByID returns the user only if the account is active.
func FindActiveUserByID(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	err := db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	return user, err
}

func FindUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	return user, err
}

func ExistsUserByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
