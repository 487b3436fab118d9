package controllers

import (
	"log"
	"net/http"

	"github.com/sushushu7/antonia-blog/config"
	"github.com/sushushu7/antonia-blog/database"
	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"
	"github.com/sushushu7/antonia-blog/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	db  database.Database
	cfg *config.Config
}

func NewAuthController(db database.Database, cfg *config.Config) *AuthController {
	return &AuthController{db: db, cfg: cfg}
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"flash": "Please fill in all fields correctly."})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := user.HashPassword(); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	if err := ac.db.Users().Create(user); err != nil {
		if errs.IsConstraintViolation(err) {
			utils.SetFlash(c, "This email is already registered. Login instead!")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		log.Printf("register: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	ac.startSession(c, user.ID)
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"flash": "Please fill in all fields correctly."})
		return
	}

	user, err := ac.db.Users().FindByEmail(req.Email)
	if err != nil {
		if errs.IsNotFound(err) {
			utils.SetFlash(c, "Email not registered.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		log.Printf("login: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.SetFlash(c, "Password does not match.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ac.startSession(c, user.ID)
}

func (ac *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// startSession binds the session cookie to the identity and sends the
// client back to the post list. Called only after the credentials check.
func (ac *AuthController) startSession(c *gin.Context, userID uint) {
	token, err := utils.GenerateSessionToken(userID, ac.cfg.SessionSecret)
	if err != nil {
		log.Printf("session token: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	utils.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}
