package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tasknest/tasknest/internal/middleware"
	"github.com/tasknest/tasknest/internal/services"
	"github.com/tasknest/tasknest/pkg/response"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

type createTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// List returns the caller's tags with usage counts
// GET /api/tags?filter=used|unused
func (h *TagHandler) List(c *gin.Context) {
	filter := c.Query("filter")
	if filter != "" && filter != "used" && filter != "unused" {
		response.BadRequest(c, "filter must be used or unused")
		return
	}

	tags, err := h.tagService.List(middleware.GetUserID(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tags)
}

// Create adds a tag
// POST /api/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tag, err := h.tagService.Create(middleware.GetUserID(c), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tag)
}

// Delete removes an unused tag, by numeric id or by name
// DELETE /api/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	param := c.Param("id")

	var err error
	if id, convErr := strconv.ParseUint(param, 10, 32); convErr == nil {
		err = h.tagService.Delete(middleware.GetUserID(c), uint(id))
	} else {
		err = h.tagService.DeleteByName(middleware.GetUserID(c), param)
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "tag deleted"})
}
