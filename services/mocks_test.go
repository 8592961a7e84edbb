package services

import (
	"context"

	"blog-platform/models"
	"blog-platform/repositories"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) Delete(user *models.User) error {
	return m.Called(user).Error(0)
}

type mockRoleRepository struct {
	mock.Mock
}

func (m *mockRoleRepository) GetByValue(value models.RoleValue) (*models.Role, error) {
	args := m.Called(value)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *mockRoleRepository) GetAll() ([]models.Role, error) {
	args := m.Called()
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

type mockBlogRepository struct {
	mock.Mock
}

func (m *mockBlogRepository) Create(blog *models.Blog) error {
	return m.Called(blog).Error(0)
}

func (m *mockBlogRepository) GetByID(id string) (*models.Blog, error) {
	args := m.Called(id)
	blog, _ := args.Get(0).(*models.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogRepository) GetByPublisherAndID(blogID, publisherID string) (*models.Blog, error) {
	args := m.Called(blogID, publisherID)
	blog, _ := args.Get(0).(*models.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogRepository) GetByPublisherAndName(publisherID, name string) (*models.Blog, error) {
	args := m.Called(publisherID, name)
	blog, _ := args.Get(0).(*models.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogRepository) GetList(params models.PaginationParams) ([]models.Blog, int64, error) {
	args := m.Called(params)
	blogs, _ := args.Get(0).([]models.Blog)
	return blogs, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepository) Update(blog *models.Blog) error {
	return m.Called(blog).Error(0)
}

func (m *mockBlogRepository) Delete(blog *models.Blog) error {
	return m.Called(blog).Error(0)
}

type mockBlogPostRepository struct {
	mock.Mock
}

func (m *mockBlogPostRepository) Transaction(fn func(repositories.BlogPostRepository) error) error {
	return fn(m)
}

func (m *mockBlogPostRepository) Create(post *models.BlogPost) error {
	return m.Called(post).Error(0)
}

func (m *mockBlogPostRepository) GetByID(id string) (*models.BlogPost, error) {
	args := m.Called(id)
	post, _ := args.Get(0).(*models.BlogPost)
	return post, args.Error(1)
}

func (m *mockBlogPostRepository) GetListByBlog(blogID string, params models.PaginationParams, includeUnpublished bool) ([]models.BlogPost, int64, error) {
	args := m.Called(blogID, params, includeUnpublished)
	posts, _ := args.Get(0).([]models.BlogPost)
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogPostRepository) Update(post *models.BlogPost) error {
	return m.Called(post).Error(0)
}

func (m *mockBlogPostRepository) Delete(post *models.BlogPost) error {
	return m.Called(post).Error(0)
}

type mockStorageService struct {
	mock.Mock
}

func (m *mockStorageService) StoragePrefix() string {
	return m.Called().String(0)
}

func (m *mockStorageService) Upload(ctx context.Context, file UploadFile, key UploadKey) (string, error) {
	args := m.Called(ctx, file, key)
	return args.String(0), args.Error(1)
}

func (m *mockStorageService) DeleteByURL(ctx context.Context, imageURL string) error {
	return m.Called(ctx, imageURL).Error(0)
}

func (m *mockStorageService) ListFolder(ctx context.Context, folderKey string) ([]types.Object, error) {
	args := m.Called(ctx, folderKey)
	objects, _ := args.Get(0).([]types.Object)
	return objects, args.Error(1)
}

func (m *mockStorageService) DeleteObjects(ctx context.Context, objects []types.Object) error {
	return m.Called(ctx, objects).Error(0)
}
