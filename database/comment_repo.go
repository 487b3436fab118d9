package database

import (
	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"

	"gorm.io/gorm"
)

type GormCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *GormCommentRepo {
	return &GormCommentRepo{db: db}
}

// Create inserts a comment after verifying both required references inside
// the transaction. Anonymous comments never reach this layer, but a missing
// author is still rejected here.
func (r *GormCommentRepo) Create(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", comment.AuthorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewConstraintViolation("comment author does not exist")
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewConstraintViolation("parent post does not exist")
		}
		return tx.Create(comment).Error
	})
}

// FindByPost returns the comments on a post with their authors preloaded,
// so rendering never issues per-comment queries.
func (r *GormCommentRepo) FindByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}
