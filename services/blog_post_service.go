package services

import (
	"context"
	"errors"

	"blog-platform/models"
	"blog-platform/repositories"

	"gorm.io/gorm"
)

type BlogPostService interface {
	Create(ctx context.Context, publisherID string, image UploadFile, req models.CreateBlogPostRequest) (*models.BlogPost, error)
	GetByIDAccordingToAvailability(postID string, caller models.AuthUser) (*models.BlogPost, error)
	GetPostsByBlogID(blogID string, caller models.AuthUser, params models.PaginationParams) ([]models.BlogPost, int64, error)
	Update(userID string, req models.UpdateBlogPostRequest) (*models.BlogPost, error)
	UpdateAvatar(ctx context.Context, postID, userID string, image UploadFile) (*models.BlogPost, error)
	HandleModeratorDecision(req models.ModeratorDecisionRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, postID, userID string) error
}

type blogPostService struct {
	blogPostRepo repositories.BlogPostRepository
	blogService  BlogService
	storage      StorageService
}

func NewBlogPostService(blogPostRepo repositories.BlogPostRepository, blogService BlogService, storage StorageService) BlogPostService {
	return &blogPostService{
		blogPostRepo: blogPostRepo,
		blogService:  blogService,
		storage:      storage,
	}
}

// Create inserts the post in ON_REVIEW and uploads its avatar inside one
// database transaction. The upload itself is not covered by that
// transaction's atomicity.
func (s *blogPostService) Create(ctx context.Context, publisherID string, image UploadFile, req models.CreateBlogPostRequest) (*models.BlogPost, error) {
	// Check if blog exists and belongs to the publisher
	if _, err := s.blogService.GetByPublisherAndID(req.BlogID, publisherID); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusOnReview,
		BlogID:      req.BlogID,
	}

	err := s.blogPostRepo.Transaction(func(txRepo repositories.BlogPostRepository) error {
		if err := txRepo.Create(post); err != nil {
			return err
		}

		avatarURL, err := s.storage.Upload(ctx, image, UploadKey{
			OwnerID:    publisherID,
			ParentID:   req.BlogID,
			ResourceID: post.ID,
		})
		if err != nil {
			return err
		}

		post.Avatar = avatarURL
		return txRepo.Update(post)
	})
	if err != nil {
		return nil, models.NewInternalError("Post was not created", err)
	}

	return post, nil
}

// GetByIDAccordingToAvailability hides non-published posts from everyone but
// the owning publisher and moderators.
func (s *blogPostService) GetByIDAccordingToAvailability(postID string, caller models.AuthUser) (*models.BlogPost, error) {
	post, err := s.getByID(postID)
	if err != nil {
		return nil, err
	}

	if post.Status == models.StatusPublished {
		return post, nil
	}

	if caller.IsAnonymous() {
		return nil, models.ErrorUnauthorized{Message: "Sign in first"}
	}

	if post.Blog.PublisherID == caller.ID || caller.Role == models.RoleModerator {
		return post, nil
	}

	// NotFound rather than Forbidden, to not leak existence
	return nil, models.ErrorNotFound{Message: "Blog post was not found"}
}

func (s *blogPostService) GetPostsByBlogID(blogID string, caller models.AuthUser, params models.PaginationParams) ([]models.BlogPost, int64, error) {
	includeUnpublished := false
	if !caller.IsAnonymous() {
		if caller.Role == models.RoleModerator {
			includeUnpublished = true
		} else if _, err := s.blogService.GetByPublisherAndID(blogID, caller.ID); err == nil {
			includeUnpublished = true
		}
	}

	posts, total, err := s.blogPostRepo.GetListByBlog(blogID, params, includeUnpublished)
	if err != nil {
		return nil, 0, models.NewInternalError("Can't extract posts from db", err)
	}

	return posts, total, nil
}

// Update patches title/description. Any edit forces re-moderation.
func (s *blogPostService) Update(userID string, req models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.getByID(req.BlogPostID)
	if err != nil {
		return nil, err
	}

	if post.Blog.PublisherID != userID {
		return nil, models.ErrorForbidden{Message: "User is not blog-post owner"}
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	post.Status = models.StatusOnReview

	if err := s.blogPostRepo.Update(post); err != nil {
		return nil, models.NewInternalError("Can't update blog post", err)
	}

	return post, nil
}

// UpdateAvatar replaces the stored avatar URL. The previous object is not
// deleted.
func (s *blogPostService) UpdateAvatar(ctx context.Context, postID, userID string, image UploadFile) (*models.BlogPost, error) {
	post, err := s.getByID(postID)
	if err != nil {
		return nil, err
	}

	if post.Blog.PublisherID != userID {
		return nil, models.ErrorForbidden{Message: "User is not blog-post owner"}
	}

	avatarURL, err := s.storage.Upload(ctx, image, UploadKey{
		OwnerID:    post.Blog.PublisherID,
		ParentID:   post.BlogID,
		ResourceID: post.ID,
	})
	if err != nil {
		return nil, err
	}

	post.Avatar = avatarURL
	if err := s.blogPostRepo.Update(post); err != nil {
		return nil, models.NewInternalError("Unable to patch", err)
	}

	return post, nil
}

// HandleModeratorDecision is only legal while the post is ON_REVIEW.
func (s *blogPostService) HandleModeratorDecision(req models.ModeratorDecisionRequest) (*models.BlogPost, error) {
	post, err := s.getByID(req.BlogPostID)
	if err != nil {
		return nil, err
	}

	if post.Status != models.StatusOnReview {
		return nil, models.ErrorBadRequest{Message: "Decision can't be handled"}
	}

	if req.Decision == models.DecisionPublish {
		post.Status = models.StatusPublished
	} else {
		post.Status = models.StatusRejected
	}

	if err := s.blogPostRepo.Update(post); err != nil {
		return nil, models.NewInternalError("Can't update blog post", err)
	}

	return post, nil
}

// Delete removes the row first; a failing object delete surfaces as a server
// error after the row is already gone.
func (s *blogPostService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.getByID(postID)
	if err != nil {
		return err
	}

	if post.Blog.PublisherID != userID {
		return models.ErrorForbidden{Message: "User is not blog-post owner"}
	}

	if err := s.blogPostRepo.Delete(post); err != nil {
		return models.NewInternalError("Can't delete blog post", err)
	}

	if post.Avatar != "" {
		return s.storage.DeleteByURL(ctx, post.Avatar)
	}

	return nil
}

func (s *blogPostService) getByID(postID string) (*models.BlogPost, error) {
	post, err := s.blogPostRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Post not found"}
		}
		return nil, models.NewInternalError("Can't find blog post", err)
	}

	return post, nil
}
