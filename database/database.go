package database

import (
	"github.com/sushushu7/antonia-blog/models"

	"gorm.io/gorm"
)

// UserRepo persists identity records. Email is unique: Create fails with a
// constraint violation before any row is written when the email is taken.
type UserRepo interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

// PostRepo persists blog posts. Title is unique. Delete cascades to the
// post's comments in the same transaction.
type PostRepo interface {
	Create(post *models.Post) error
	FindAll() ([]models.Post, error)
	FindByID(id uint) (*models.Post, error)
	FindByTitle(title string) (*models.Post, error)
	FindByAuthor(authorID uint) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

// CommentRepo persists comments. Both author and parent post must exist;
// Create fails with a constraint violation otherwise.
type CommentRepo interface {
	Create(comment *models.Comment) error
	FindByPost(postID uint) ([]models.Comment, error)
}

// Database bundles the repositories into the application context handed to
// handlers, replacing package-level singletons.
type Database struct {
	userRepo    UserRepo
	postRepo    PostRepo
	commentRepo CommentRepo
}

// New wires the repositories over a shared GORM instance.
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		postRepo:    NewPostRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

// NewWithRepos builds a Database from explicit repositories. Tests use it
// with the in-memory implementations.
func NewWithRepos(users UserRepo, posts PostRepo, comments CommentRepo) Database {
	return Database{
		userRepo:    users,
		postRepo:    posts,
		commentRepo: comments,
	}
}

func (d Database) Users() UserRepo {
	return d.userRepo
}

func (d Database) Posts() PostRepo {
	return d.postRepo
}

func (d Database) Comments() CommentRepo {
	return d.commentRepo
}
