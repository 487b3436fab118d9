package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sushushu7/antonia-blog/config"
	"github.com/sushushu7/antonia-blog/database"
	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/middleware"
	"github.com/sushushu7/antonia-blog/models"
	"github.com/sushushu7/antonia-blog/utils"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	db  database.Database
	cfg *config.Config
}

func NewPostController(db database.Database, cfg *config.Config) *PostController {
	return &PostController{db: db, cfg: cfg}
}

func (pc *PostController) Index(c *gin.Context) {
	posts, err := pc.db.Posts().FindAll()
	if err != nil {
		log.Printf("list posts: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"posts": posts})
}

func (pc *PostController) Show(c *gin.Context) {
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	comments, err := pc.db.Comments().FindByPost(post.ID)
	if err != nil {
		log.Printf("load comments: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	render(c, http.StatusOK, "post.html", gin.H{"post": post, "comments": comments})
}

// CreateComment handles the comment form on the post page. The route is
// guarded by LoginRequired, so the identity is always present here.
func (pc *PostController) CreateComment(c *gin.Context) {
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SetFlash(c, "Comment cannot be empty.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
		return
	}

	user := middleware.UserFrom(c)
	comment := &models.Comment{
		Text:     req.Text,
		AuthorID: user.ID,
		PostID:   post.ID,
	}
	if err := pc.db.Comments().Create(comment); err != nil {
		log.Printf("create comment: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (pc *PostController) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "make-post.html", gin.H{
		"heading": "New Post",
		"action":  "/new-post",
	})
}

func (pc *PostController) Create(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, "make-post.html", gin.H{
			"heading": "New Post",
			"action":  "/new-post",
			"flash":   "Please fill in all fields correctly.",
		})
		return
	}

	user := middleware.UserFrom(c)
	post := &models.Post{
		AuthorID: user.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImgURL:   req.ImgURL,
		Body:     req.Body,
		Date:     time.Now().Format(models.DateLayout),
	}
	if err := pc.db.Posts().Create(post); err != nil {
		if errs.IsConstraintViolation(err) {
			render(c, http.StatusConflict, "make-post.html", gin.H{
				"heading": "New Post",
				"action":  "/new-post",
				"flash":   "This title is already used. Pick another one.",
				"post":    post,
			})
			return
		}
		log.Printf("create post: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (pc *PostController) ShowEdit(c *gin.Context) {
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "make-post.html", gin.H{
		"heading": "Edit Post",
		"action":  fmt.Sprintf("/edit-post/%d", post.ID),
		"post":    post,
	})
}

func (pc *PostController) Update(c *gin.Context) {
	post, ok := pc.findPost(c)
	if !ok {
		return
	}

	action := fmt.Sprintf("/edit-post/%d", post.ID)

	var req models.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, "make-post.html", gin.H{
			"heading": "Edit Post",
			"action":  action,
			"flash":   "Please fill in all fields correctly.",
			"post":    post,
		})
		return
	}

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.ImgURL = req.ImgURL
	post.Body = req.Body
	if err := pc.db.Posts().Update(post); err != nil {
		if errs.IsConstraintViolation(err) {
			render(c, http.StatusConflict, "make-post.html", gin.H{
				"heading": "Edit Post",
				"action":  action,
				"flash":   "This title is already used. Pick another one.",
				"post":    post,
			})
			return
		}
		log.Printf("update post: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (pc *PostController) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := pc.db.Posts().Delete(id); err != nil {
		if errs.IsNotFound(err) {
			c.String(http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("delete post: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// findPost loads the post named in the URL, writing a 404 and returning
// ok=false when the id is malformed or absent.
func (pc *PostController) findPost(c *gin.Context) (*models.Post, bool) {
	id, ok := postID(c)
	if !ok {
		return nil, false
	}

	post, err := pc.db.Posts().FindByID(id)
	if err != nil {
		if errs.IsNotFound(err) {
			c.String(http.StatusNotFound, "Post not found")
			return nil, false
		}
		log.Printf("load post: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return nil, false
	}
	return post, true
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Post not found")
		return 0, false
	}
	return uint(id), true
}
