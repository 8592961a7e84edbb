package models

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=64"`
	FullName *string `json:"full_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8,max=64"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateBlogRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type PatchBlogRequest struct {
	BlogID      string  `json:"blog_id" binding:"required,uuid"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateBlogPostRequest arrives as a multipart form together with the avatar
// image.
type CreateBlogPostRequest struct {
	BlogID      string `form:"blog_id" binding:"required,uuid"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type UpdateBlogPostRequest struct {
	BlogPostID  string  `json:"blog_post_id" binding:"required,uuid"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ModeratorDecisionRequest struct {
	BlogPostID string           `json:"blog_post_id" binding:"required,uuid"`
	Decision   BlogPostDecision `json:"decision" binding:"required,oneof=PUBLISH REJECT"`
}

type DeleteBlogRequest struct {
	BlogID string `json:"blog_id" binding:"required,uuid"`
}

type DeleteBlogPostRequest struct {
	BlogPostID string `json:"blog_post_id" binding:"required,uuid"`
}

type PaginationParams struct {
	Page    int `form:"page" json:"page" binding:"omitempty,gt=0"`
	PerPage int `form:"per_page" json:"per_page" binding:"omitempty,gt=0"`
}

// Offset for the configured page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type PaginatedResponse struct {
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}
