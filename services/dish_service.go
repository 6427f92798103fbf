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

type DishService struct {
	Repo     *repository.DishRepository
	RestRepo *repository.RestaurantRepository
	Storage  storage.Uploader
}

func NewDishService(
	repo *repository.DishRepository,
	restRepo *repository.RestaurantRepository,
	st storage.Uploader,
) *DishService {
	return &DishService{Repo: repo, RestRepo: restRepo, Storage: st}
}

type CreateDishIn struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Detail       string  `json:"detail"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category" binding:"required,oneof=veg non-veg"`
}

type UpdateDishIn struct {
	Name     *string  `json:"name"`
	Detail   *string  `json:"detail"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

type DishListOut struct {
	Items []entity.Dish `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("dish not found")
		}
		return nil, err
	}
	return d, nil
}

func (s *DishService) ListByRestaurant(restID uint, page, limit int) (*DishListOut, error) {
	if _, err := s.restaurant(restID); err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListByRestaurant(restID, page, limit)
	if err != nil {
		return nil, err
	}
	return &DishListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *DishService) restaurant(id uint) (*entity.Restaurant, error) {
	r, err := s.RestRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	return r, nil
}

func (s *DishService) authorize(rest *entity.Restaurant, userID uint, isAdmin bool) error {
	if isAdmin || rest.UserID == userID {
		return nil
	}
	return apperr.Forbidden("not your restaurant")
}

// checkCategory enforces that a veg-only restaurant carries no non-veg dish.
func checkCategory(rest *entity.Restaurant, dishCategory string) error {
	if rest.Category == entity.CategoryVeg && dishCategory == entity.CategoryNonVeg {
		return apperr.Unprocessable("non-veg dish not allowed in a veg restaurant")
	}
	return nil
}

func (s *DishService) Create(userID uint, isAdmin bool, in *CreateDishIn) (*entity.Dish, error) {
	rest, err := s.restaurant(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(rest, userID, isAdmin); err != nil {
		return nil, err
	}
	if err := checkCategory(rest, in.Category); err != nil {
		return nil, err
	}

	dish := &entity.Dish{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Detail:       in.Detail,
		Price:        in.Price,
		Category:     in.Category,
	}
	if err := s.Repo.Create(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Update(userID uint, isAdmin bool, id uint, in *UpdateDishIn) (*entity.Dish, error) {
	dish, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	rest, err := s.restaurant(dish.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(rest, userID, isAdmin); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Detail != nil {
		updates["detail"] = *in.Detail
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.BadRequest("price must be positive")
		}
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		if err := checkCategory(rest, *in.Category); err != nil {
			return nil, err
		}
		updates["category"] = *in.Category
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *DishService) Delete(userID uint, isAdmin bool, id uint) error {
	dish, err := s.Get(id)
	if err != nil {
		return err
	}
	rest, err := s.restaurant(dish.RestaurantID)
	if err != nil {
		return err
	}
	if err := s.authorize(rest, userID, isAdmin); err != nil {
		return err
	}

	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("dish not found")
	}
	return nil
}

func (s *DishService) UploadImage(ctx context.Context, userID uint, isAdmin bool, id uint, filename, contentType string, body io.Reader) (string, error) {
	dish, err := s.Get(id)
	if err != nil {
		return "", err
	}
	rest, err := s.restaurant(dish.RestaurantID)
	if err != nil {
		return "", err
	}
	if err := s.authorize(rest, userID, isAdmin); err != nil {
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
