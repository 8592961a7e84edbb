package repositories

import (
	"blog-platform/models"

	"gorm.io/gorm"
)

type RoleRepository interface {
	GetByValue(value models.RoleValue) (*models.Role, error)
	GetAll() ([]models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetByValue(value models.RoleValue) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("value = ?", value).First(&role).Error
	return &role, err
}

func (r *roleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("id").Find(&roles).Error
	return roles, err
}
