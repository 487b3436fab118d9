package database

import (
	"sort"
	"sync"

	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"
)

// memoryState is the shared backing for the in-memory repositories. It
// enforces the same uniqueness and foreign-key invariants as the GORM
// implementations so handler tests can run without a live Postgres.
type memoryState struct {
	mu            sync.Mutex
	users         map[uint]models.User
	posts         map[uint]models.Post
	comments      map[uint]models.Comment
	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
}

// NewMemory returns a Database backed entirely by process memory.
func NewMemory() Database {
	s := &memoryState{
		users:         make(map[uint]models.User),
		posts:         make(map[uint]models.Post),
		comments:      make(map[uint]models.Comment),
		nextUserID:    1,
		nextPostID:    1,
		nextCommentID: 1,
	}
	return NewWithRepos(
		&MemoryUserRepo{s: s},
		&MemoryPostRepo{s: s},
		&MemoryCommentRepo{s: s},
	)
}

type MemoryUserRepo struct {
	s *memoryState
}

func (r *MemoryUserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return errs.NewConstraintViolation("email already registered")
		}
	}
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) FindByID(id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.NewNotFound("user")
	}
	return &u, nil
}

func (r *MemoryUserRepo) FindByEmail(email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, errs.NewNotFound("user")
}

type MemoryPostRepo struct {
	s *memoryState
}

func (r *MemoryPostRepo) Create(post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Title == post.Title {
			return errs.NewConstraintViolation("title already used")
		}
	}
	author, ok := r.s.users[post.AuthorID]
	if !ok {
		return errs.NewConstraintViolation("author does not exist")
	}
	post.ID = r.s.nextPostID
	r.s.nextPostID++
	post.Author = author
	r.s.posts[post.ID] = *post
	return nil
}

func (r *MemoryPostRepo) FindAll() ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := make([]models.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		p.Author = r.s.users[p.AuthorID]
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *MemoryPostRepo) FindByID(id uint) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, errs.NewNotFound("post")
	}
	p.Author = r.s.users[p.AuthorID]
	return &p, nil
}

func (r *MemoryPostRepo) FindByTitle(title string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Title == title {
			post := p
			post.Author = r.s.users[p.AuthorID]
			return &post, nil
		}
	}
	return nil, errs.NewNotFound("post")
}

func (r *MemoryPostRepo) FindByAuthor(authorID uint) ([]models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var posts []models.Post
	for _, p := range r.s.posts {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *MemoryPostRepo) Update(post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.posts[post.ID]
	if !ok {
		return errs.NewNotFound("post")
	}
	for id, p := range r.s.posts {
		if id != post.ID && p.Title == post.Title {
			return errs.NewConstraintViolation("title already used")
		}
	}
	existing.Title = post.Title
	existing.Subtitle = post.Subtitle
	existing.ImgURL = post.ImgURL
	existing.Body = post.Body
	r.s.posts[post.ID] = existing
	return nil
}

func (r *MemoryPostRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return errs.NewNotFound("post")
	}
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	delete(r.s.posts, id)
	return nil
}

type MemoryCommentRepo struct {
	s *memoryState
}

func (r *MemoryCommentRepo) Create(comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[comment.AuthorID]; !ok {
		return errs.NewConstraintViolation("comment author does not exist")
	}
	if _, ok := r.s.posts[comment.PostID]; !ok {
		return errs.NewConstraintViolation("parent post does not exist")
	}
	comment.ID = r.s.nextCommentID
	r.s.nextCommentID++
	r.s.comments[comment.ID] = *comment
	return nil
}

func (r *MemoryCommentRepo) FindByPost(postID uint) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var comments []models.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID {
			c.Author = r.s.users[c.AuthorID]
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}
