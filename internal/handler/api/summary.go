package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"entry-registry/internal/domain/summary"
	resdto "entry-registry/internal/handler/dto/response"
	"entry-registry/internal/handler/httperr"
	"entry-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	q        queries.EntryQueries
	maxDepth int
}

func NewSummaryHandler(q queries.EntryQueries, resolver *summary.Resolver) *SummaryHandler {
	return &SummaryHandler{q: q, maxDepth: resolver.MaxDepth()}
}

// @Summary Project summary
// @Description Flatten a project into its leaf resources (quantities multiplied along the path) and total build time
// @Tags summary
// @Produce json
// @Param name query string true "Project name"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /summary [get]
func (h *SummaryHandler) Summary(c *gin.Context) {
	name := c.Query("name")
	view, err := h.q.Summarize(c.Request.Context(), name)
	if err != nil {
		status, msg := h.resolveErrorMessage(err, name)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}

func (h *SummaryHandler) resolveErrorMessage(err error, name string) (int, string) {
	var cycle *summary.CycleError
	switch {
	case errors.Is(err, summary.ErrNotFound):
		return http.StatusBadRequest, fmt.Sprintf("project named %s was not found", name)
	case errors.Is(err, summary.ErrNotAProject):
		return http.StatusBadRequest, "The dependency refers to a 'resource' and not a 'project'"
	case errors.Is(err, summary.ErrDanglingDependency):
		return http.StatusBadRequest, "non-existent dependency found"
	case errors.As(err, &cycle):
		return http.StatusBadRequest, "cyclic dependency found: " + strings.Join(cycle.Path, " -> ")
	case errors.Is(err, summary.ErrDependencyTooDeep):
		return http.StatusBadRequest, fmt.Sprintf("dependency tree exceeds maximum depth of %d", h.maxDepth)
	case errors.Is(err, summary.ErrNumberOverflow):
		return http.StatusBadRequest, "summary quantities or build time exceed the representable range"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
