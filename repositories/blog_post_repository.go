package repositories

import (
	"blog-platform/models"

	"gorm.io/gorm"
)

type BlogPostRepository interface {
	// Transaction runs fn against a transaction-scoped repository.
	Transaction(fn func(txRepo BlogPostRepository) error) error
	Create(post *models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	GetListByBlog(blogID string, params models.PaginationParams, includeUnpublished bool) ([]models.BlogPost, int64, error)
	Update(post *models.BlogPost) error
	Delete(post *models.BlogPost) error
}

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Transaction(fn func(txRepo BlogPostRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&blogPostRepository{db: tx})
	})
}

func (r *blogPostRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Blog.Publisher").Where("id = ?", id).First(&post).Error
	return &post, err
}

func (r *blogPostRepository) GetListByBlog(blogID string, params models.PaginationParams, includeUnpublished bool) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	query := r.db.Model(&models.BlogPost{}).Where("blog_id = ?", blogID)
	if !includeUnpublished {
		query = query.Where("status = ?", models.StatusPublished)
	}

	query.Count(&total)

	err := query.Order("created_at desc").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&posts).Error

	return posts, total, err
}

func (r *blogPostRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogPostRepository) Delete(post *models.BlogPost) error {
	return r.db.Delete(post).Error
}
