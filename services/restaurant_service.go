package services

import (
	"context"
	"errors"
	"io"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/pkg/storage"
	"dishpatch-be/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	CityRepo *repository.CityRepository
	Storage  storage.Uploader
}

func NewRestaurantService(
	repo *repository.RestaurantRepository,
	cityRepo *repository.CityRepository,
	st storage.Uploader,
) *RestaurantService {
	return &RestaurantService{Repo: repo, CityRepo: cityRepo, Storage: st}
}

type CreateRestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,oneof=veg non-veg"`
	CityID      uint   `json:"cityId" binding:"required"`
}

type UpdateRestaurantIn struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	CityID      *uint   `json:"cityId"`
}

type RestaurantListOut struct {
	Items []entity.Restaurant `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

func (s *RestaurantService) List(cityID uint, page, limit int) (*RestaurantListOut, error) {
	items, total, err := s.Repo.List(cityID, page, limit)
	if err != nil {
		return nil, err
	}
	return &RestaurantListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Create(ownerID uint, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	if _, err := s.CityRepo.GetByID(in.CityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("city not found")
		}
		return nil, err
	}

	rest := &entity.Restaurant{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		Category:    in.Category,
		CityID:      in.CityID,
		UserID:      ownerID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// authorize allows the owner or an admin through.
func (s *RestaurantService) authorize(restID, userID uint, isAdmin bool) error {
	if _, err := s.Get(restID); err != nil {
		return err
	}
	if isAdmin {
		return nil
	}
	owned, err := s.Repo.IsOwnedBy(restID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperr.Forbidden("not your restaurant")
	}
	return nil
}

func (s *RestaurantService) Update(userID uint, isAdmin bool, id uint, in *UpdateRestaurantIn) (*entity.Restaurant, error) {
	if err := s.authorize(id, userID, isAdmin); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CityID != nil {
		updates["city_id"] = *in.CityID
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *RestaurantService) Delete(userID uint, isAdmin bool, id uint) error {
	if err := s.authorize(id, userID, isAdmin); err != nil {
		return err
	}
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("restaurant not found")
	}
	return nil
}

func (s *RestaurantService) UploadImage(ctx context.Context, userID uint, isAdmin bool, id uint, filename, contentType string, body io.Reader) (string, error) {
	if err := s.authorize(id, userID, isAdmin); err != nil {
		return "", err
	}
	url, err := s.Storage.Upload(ctx, filename, contentType, body)
	if err != nil {
		return "", err
	}
	if err := s.Repo.Update(id, map[string]any{"image_url": url}); err != nil {
		return "", err
	}
	return url, nil
}
