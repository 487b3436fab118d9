package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

func (pc *PageController) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

func (pc *PageController) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}
