package api

import (
	"net/http"

	"entry-registry/internal/pkg/slug"

	"github.com/gin-gonic/gin"
)

type TitleHandler struct{}

func NewTitleHandler() *TitleHandler {
	return &TitleHandler{}
}

// @Summary Slug to title
// @Description Convert a dash separated slug into a title. "and" stays lowercase.
// @Tags title
// @Produce plain
// @Param slug query string false "Slug, e.g. make-and-build"
// @Success 200 {string} string "Make and Build"
// @Router /slugToTitle [get]
func (h *TitleHandler) SlugToTitle(c *gin.Context) {
	c.String(http.StatusOK, slug.ToTitle(c.Query("slug")))
}
