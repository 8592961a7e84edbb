package handlers

import (
	"io"

	"blog-platform/helper"
	"blog-platform/middleware"
	"blog-platform/models"
	"blog-platform/services"

	"github.com/gin-gonic/gin"
)

type BlogPostHandler struct {
	blogPostService services.BlogPostService
	Helper          *helper.HTTPHelper
}

func NewBlogPostHandler(blogPostService services.BlogPostService) *BlogPostHandler {
	return &BlogPostHandler{blogPostService: blogPostService, Helper: &helper.HTTPHelper{}}
}

func (h *BlogPostHandler) CreateBlogPost(c *gin.Context) {
	var req models.CreateBlogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	image, ok := readUploadFile(c, h.Helper)
	if !ok {
		return
	}

	caller := middleware.CurrentUser(c)
	post, err := h.blogPostService.Create(c.Request.Context(), caller.ID, image, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog post created", post)
}

func (h *BlogPostHandler) GetBlogPostByID(c *gin.Context) {
	postID := c.Query("blog_post_id")
	if postID == "" {
		h.Helper.SendBadRequest(c, "blog_post_id is required", h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	post, err := h.blogPostService.GetByIDAccordingToAvailability(postID, caller)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog post loaded", post)
}

func (h *BlogPostHandler) GetPostsByBlogID(c *gin.Context) {
	blogID := c.Query("blog_id")
	if blogID == "" {
		h.Helper.SendBadRequest(c, "blog_id is required", h.Helper.EmptyJsonMap())
		return
	}

	params, ok := bindPagination(c, h.Helper)
	if !ok {
		return
	}

	caller := middleware.CurrentUser(c)
	posts, total, err := h.blogPostService.GetPostsByBlogID(blogID, caller, params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog posts loaded", h.Helper.GeneratePaging(params, total, posts))
}

func (h *BlogPostHandler) UpdateBlogPost(c *gin.Context) {
	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	post, err := h.blogPostService.Update(caller.ID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog post updated", post)
}

func (h *BlogPostHandler) UpdateBlogPostAvatar(c *gin.Context) {
	postID := c.PostForm("blog_post_id")
	if postID == "" {
		h.Helper.SendBadRequest(c, "blog_post_id is required", h.Helper.EmptyJsonMap())
		return
	}

	image, ok := readUploadFile(c, h.Helper)
	if !ok {
		return
	}

	caller := middleware.CurrentUser(c)
	post, err := h.blogPostService.UpdateAvatar(c.Request.Context(), postID, caller.ID, image)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog post avatar updated", post)
}

func (h *BlogPostHandler) HandleModeratorDecision(c *gin.Context) {
	var req models.ModeratorDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	post, err := h.blogPostService.HandleModeratorDecision(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Decision handled", post)
}

func (h *BlogPostHandler) DeleteBlogPost(c *gin.Context) {
	var req models.DeleteBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	caller := middleware.CurrentUser(c)
	if err := h.blogPostService.Delete(c.Request.Context(), req.BlogPostID, caller.ID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Blog post deleted", h.Helper.EmptyJsonMap())
}

func readUploadFile(c *gin.Context, h *helper.HTTPHelper) (services.UploadFile, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.SendBadRequest(c, "image file is required", h.EmptyJsonMap())
		return services.UploadFile{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
		return services.UploadFile{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.SendBadRequest(c, err.Error(), h.EmptyJsonMap())
		return services.UploadFile{}, false
	}

	return services.UploadFile{Name: fileHeader.Filename, Data: data}, true
}
