package handlers

import (
	"blog-platform/config"
	"blog-platform/helper"
	"blog-platform/middleware"
	"blog-platform/models"
	"blog-platform/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: &helper.HTTPHelper{}}
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	blog, err := h.blogService.Create(caller.ID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog created", blog)
}

func (h *BlogHandler) GetPaginatedBlogsList(c *gin.Context) {
	params, ok := bindPagination(c, h.Helper)
	if !ok {
		return
	}

	blogs, total, err := h.blogService.GetPaginatedList(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blogs loaded", h.Helper.GeneratePaging(params, total, blogs))
}

func (h *BlogHandler) PatchBlog(c *gin.Context) {
	var req models.PatchBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	blog, err := h.blogService.Patch(caller.ID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog updated", blog)
}

func (h *BlogHandler) DeleteBlogByID(c *gin.Context) {
	var req models.DeleteBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	if err := h.blogService.Delete(c.Request.Context(), caller.ID, req.BlogID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog deleted", h.Helper.EmptyJsonMap())
}

// bindPagination applies the configured default page size when absent.
func bindPagination(c *gin.Context, h *helper.HTTPHelper) (models.PaginationParams, bool) {
	var params models.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
		return params, false
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.PerPage == 0 {
		params.PerPage = config.DefaultPerPage()
	}

	return params, true
}
