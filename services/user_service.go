package services

import (
	"errors"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type UserListOut struct {
	Items []entity.User `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *UserService) List(page, limit int) (*UserListOut, error) {
	users, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, err
	}
	return &UserListOut{Items: users, Total: total, Page: page, Limit: limit}, nil
}

func (s *UserService) GrantRole(userID uint, roleName string) error {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}

	role, err := s.Repo.FindRoleByName(roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("role not found")
		}
		return err
	}

	if user.HasRole(roleName) {
		return apperr.Conflict("role already granted")
	}
	return s.Repo.GrantRole(user, role)
}

func (s *UserService) RevokeRole(userID uint, roleName string) error {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}

	role, err := s.Repo.FindRoleByName(roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("role not found")
		}
		return err
	}

	if !user.HasRole(roleName) {
		return apperr.NotFound("role not granted")
	}
	return s.Repo.RevokeRole(user, role)
}
