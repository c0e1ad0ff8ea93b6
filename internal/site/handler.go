package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, homePage)
}

func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, aboutPage)
}
