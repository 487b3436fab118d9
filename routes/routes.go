package routes

import (
	"net/http"

	"github.com/sushushu7/antonia-blog/config"
	"github.com/sushushu7/antonia-blog/controllers"
	"github.com/sushushu7/antonia-blog/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, authController *controllers.AuthController, postController *controllers.PostController, pageController *controllers.PageController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", postController.Index)

	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	r.GET("/post/:id", postController.Show)
	r.POST("/post/:id", middleware.LoginRequired(), postController.CreateComment)

	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.Contact)

	admin := middleware.AdminOnly(cfg.AdminUserID)
	r.GET("/new-post", admin, postController.ShowNew)
	r.POST("/new-post", admin, postController.Create)
	// edit-post accepts POST as well so submitted edits actually persist.
	r.GET("/edit-post/:id", admin, postController.ShowEdit)
	r.POST("/edit-post/:id", admin, postController.Update)
	r.GET("/delete/:id", admin, postController.Delete)
}
