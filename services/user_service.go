package services

import (
	"context"
	"errors"
	"fmt"
	"path"

	"blog-platform/models"
	"blog-platform/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateWriter(req models.CreateUserRequest) (*models.User, error)
	CreateModerator(req models.CreateUserRequest) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(userID string, req models.UpdateUserRequest) (*models.User, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	storage  StorageService
}

func NewUserService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, storage StorageService) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		storage:  storage,
	}
}

// CreateWriter is the open signup entry point.
func (s *userService) CreateWriter(req models.CreateUserRequest) (*models.User, error) {
	return s.createWithRole(req, models.RoleWriter)
}

// CreateModerator is reachable only behind a moderator role check.
func (s *userService) CreateModerator(req models.CreateUserRequest) (*models.User, error) {
	return s.createWithRole(req, models.RoleModerator)
}

func (s *userService) createWithRole(req models.CreateUserRequest, roleValue models.RoleValue) (*models.User, error) {
	// Check if user already exists
	_, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return nil, models.ErrorBadRequest{Message: "User with this email already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError("Can't create user", err)
	}

	role, err := s.roleRepo.GetByValue(roleValue)
	if err != nil {
		return nil, models.NewInternalError("Can't resolve user role", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError("Can't create user", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, models.NewInternalError("Can't create user", err)
	}

	return s.GetByID(user.ID)
}

func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("Can't find user with id: %s", id)}
		}
		return nil, models.NewInternalError("Can't find user", err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(userID string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError("Can't update user profile", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, models.NewInternalError("Can't update user profile", err)
	}

	return user, nil
}

// DeleteProfile removes the account and then purges the user's storage
// folder. A storage failure is surfaced but does not resurrect the row.
func (s *userService) DeleteProfile(ctx context.Context, userID string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(user); err != nil {
		return models.NewInternalError("Can't delete user profile", err)
	}

	folderKey := path.Join(s.storage.StoragePrefix(), user.ID)
	objects, err := s.storage.ListFolder(ctx, folderKey)
	if err != nil {
		return err
	}

	return s.storage.DeleteObjects(ctx, objects)
}
