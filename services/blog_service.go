package services

import (
	"context"
	"errors"
	"fmt"
	"path"

	"blog-platform/models"
	"blog-platform/repositories"

	"gorm.io/gorm"
)

type BlogService interface {
	Create(publisherID string, req models.CreateBlogRequest) (*models.Blog, error)
	GetByPublisherAndID(blogID, publisherID string) (*models.Blog, error)
	GetPaginatedList(params models.PaginationParams) ([]models.Blog, int64, error)
	Patch(publisherID string, req models.PatchBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, publisherID, blogID string) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
	storage  StorageService
}

func NewBlogService(blogRepo repositories.BlogRepository, storage StorageService) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		storage:  storage,
	}
}

func (s *blogService) Create(publisherID string, req models.CreateBlogRequest) (*models.Blog, error) {
	// A publisher cannot own two blogs of the same name
	_, err := s.blogRepo.GetByPublisherAndName(publisherID, req.Name)
	if err == nil {
		return nil, models.ErrorBadRequest{Message: fmt.Sprintf("Can't create blog. Blog with name: %s, already exists", req.Name)}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError("blog wasn't created", err)
	}

	blog := &models.Blog{
		Name:        req.Name,
		Description: req.Description,
		PublisherID: publisherID,
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return nil, models.NewInternalError("blog wasn't created", err)
	}

	return blog, nil
}

// GetByPublisherAndID is deliberately ambiguous between "not found" and
// "not owner".
func (s *blogService) GetByPublisherAndID(blogID, publisherID string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByPublisherAndID(blogID, publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorBadRequest{Message: "blog wasn't found or you're not owner"}
		}
		return nil, models.NewInternalError("Can't find blog", err)
	}

	return blog, nil
}

func (s *blogService) GetPaginatedList(params models.PaginationParams) ([]models.Blog, int64, error) {
	blogs, total, err := s.blogRepo.GetList(params)
	if err != nil {
		return nil, 0, models.NewInternalError("Can't find blogs", err)
	}

	return blogs, total, nil
}

func (s *blogService) Patch(publisherID string, req models.PatchBlogRequest) (*models.Blog, error) {
	blog, err := s.GetByPublisherAndID(req.BlogID, publisherID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		blog.Name = *req.Name
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}

	if err := s.blogRepo.Update(blog); err != nil {
		return nil, models.NewInternalError("Can't patch blog", err)
	}

	return blog, nil
}

// Delete removes the blog with its posts, then purges the blog's storage
// folder. The row deletion is not rolled back when the purge fails.
func (s *blogService) Delete(ctx context.Context, publisherID, blogID string) error {
	blog, err := s.GetByPublisherAndID(blogID, publisherID)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(blog); err != nil {
		return models.NewInternalError("Can't delete blog", err)
	}

	folderKey := path.Join(s.storage.StoragePrefix(), publisherID, blog.ID)
	objects, err := s.storage.ListFolder(ctx, folderKey)
	if err != nil {
		return err
	}

	return s.storage.DeleteObjects(ctx, objects)
}
