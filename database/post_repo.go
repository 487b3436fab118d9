package database

import (
	"errors"

	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"

	"gorm.io/gorm"
)

type GormPostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *GormPostRepo {
	return &GormPostRepo{db: db}
}

// Create inserts a post after checking title uniqueness and that the author
// exists, all in one transaction.
func (r *GormPostRepo) Create(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("title = ?", post.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConstraintViolation("title already used")
		}
		if err := tx.Model(&models.User{}).Where("id = ?", post.AuthorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewConstraintViolation("author does not exist")
		}
		return tx.Create(post).Error
	})
}

func (r *GormPostRepo) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Joins("Author").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Joins("Author").First(&post, "blog_posts.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("post")
		}
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepo) FindByTitle(title string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("title = ?", title).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("post")
		}
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepo) FindByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

// Update overwrites the mutable fields of an existing post. The title stays
// unique against every other post.
func (r *GormPostRepo) Update(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("title = ? AND id <> ?", post.Title, post.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConstraintViolation("title already used")
		}
		res := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]any{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"img_url":  post.ImgURL,
			"body":     post.Body,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound("post")
		}
		return nil
	})
}

// Delete removes a post and every comment referencing it in a single
// transaction, so no orphaned comment survives.
func (r *GormPostRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound("post")
		}
		return nil
	})
}
