package repositories

import (
	"blog-platform/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id string) (*models.Blog, error)
	GetByPublisherAndID(blogID, publisherID string) (*models.Blog, error)
	GetByPublisherAndName(publisherID, name string) (*models.Blog, error)
	GetList(params models.PaginationParams) ([]models.Blog, int64, error)
	Update(blog *models.Blog) error
	Delete(blog *models.Blog) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ?", id).First(&blog).Error
	return &blog, err
}

func (r *blogRepository) GetByPublisherAndID(blogID, publisherID string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ? AND publisher_id = ?", blogID, publisherID).First(&blog).Error
	return &blog, err
}

func (r *blogRepository) GetByPublisherAndName(publisherID, name string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("publisher_id = ? AND name = ?", publisherID, name).First(&blog).Error
	return &blog, err
}

func (r *blogRepository) GetList(params models.PaginationParams) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{}).Preload("Publisher")
	query.Count(&total)

	err := query.Order("created_at desc").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&blogs).Error

	return blogs, total, err
}

func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *blogRepository) Delete(blog *models.Blog) error {
	return r.db.Select("Posts").Delete(blog).Error
}
