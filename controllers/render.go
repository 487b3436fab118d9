package controllers

import (
	"github.com/sushushu7/antonia-blog/middleware"
	"github.com/sushushu7/antonia-blog/utils"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML so every page gets the login state and any pending
// flash message in its context.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["is_logged_in"] = middleware.UserFrom(c) != nil
	if _, ok := data["flash"]; !ok {
		data["flash"] = utils.TakeFlash(c)
	}
	c.HTML(code, name, data)
}
