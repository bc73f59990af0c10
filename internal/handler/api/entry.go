package api

import (
	"errors"
	"fmt"
	"net/http"

	"entry-registry/internal/domain/entry"
	reqdto "entry-registry/internal/handler/dto/request"
	resdto "entry-registry/internal/handler/dto/response"
	"entry-registry/internal/handler/httperr"
	"entry-registry/internal/usecase/commands"
	"entry-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequestBody = "invalid request body"

type EntryHandler struct {
	cmds commands.EntryCommands
	q    queries.EntryQueries
}

func NewEntryHandler(cmds commands.EntryCommands, q queries.EntryQueries) *EntryHandler {
	return &EntryHandler{cmds: cmds, q: q}
}

// @Summary Register entry
// @Description Register a resource or a project. Names are unique across both.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body reqdto.ProjectEntryRequest true "Entry"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Router /projectEntry [post]
func (h *EntryHandler) Register(c *gin.Context) {
	var req reqdto.ProjectEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequestBody, nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequestBody, err.Error())
		return
	}

	if err := h.cmds.Register(c.Request.Context(), params); err != nil {
		status, msg := registrationErrorMessage(err, req)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

func registrationErrorMessage(err error, req reqdto.ProjectEntryRequest) (int, string) {
	switch {
	case errors.Is(err, entry.ErrInvalidType):
		return http.StatusBadRequest, fmt.Sprintf(`type "%s" is not a valid type only "resource" or "project" are accepted`, req.Type)
	case errors.Is(err, entry.ErrNegativeBuildTime):
		return http.StatusBadRequest, "resource has negative build time"
	case errors.Is(err, entry.ErrDuplicateRequiredResource):
		return http.StatusBadRequest, fmt.Sprintf("project %s has duplicate names in required resources", req.Name)
	case errors.Is(err, entry.ErrNameCollision):
		return http.StatusBadRequest, fmt.Sprintf("the name %s already exists in the project registry", req.Name)
	case errors.Is(err, entry.ErrEmptyName),
		errors.Is(err, entry.ErrEmptyReference),
		errors.Is(err, entry.ErrInvalidQuantity),
		errors.Is(err, entry.ErrInvalidNumber):
		return http.StatusBadRequest, msgInvalidRequestBody
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// @Summary Get entry
// @Description Get a registered entry by name
// @Tags entries
// @Produce json
// @Param name path string true "Entry name"
// @Success 200 {object} resdto.EntryResponse
// @Failure 404 {object} httperr.Response
// @Router /entries/{name} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	name := c.Param("name")
	view, err := h.q.Lookup(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, queries.ErrEntryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, fmt.Sprintf("entry named %s was not found", name), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryView(view))
}

// @Summary List entries
// @Description List every registered entry ordered by name
// @Tags entries
// @Produce json
// @Success 200 {array} resdto.EntryResponse
// @Failure 500 {object} httperr.Response
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntryList(views))
}
