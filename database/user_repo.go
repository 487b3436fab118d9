package database

import (
	"errors"

	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"

	"gorm.io/gorm"
)

type GormUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *GormUserRepo {
	return &GormUserRepo{db: db}
}

// Create inserts a new user. The duplicate-email check and the insert run
// in one transaction so a taken email never leaves a partial row behind.
func (r *GormUserRepo) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConstraintViolation("email already registered")
		}
		return tx.Create(user).Error
	})
}

func (r *GormUserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("user")
		}
		return nil, err
	}
	return &user, nil
}
