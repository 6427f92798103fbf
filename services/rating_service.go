package services

import (
	"errors"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"

	"gorm.io/gorm"
)

type RatingService struct {
	Repo      *repository.RatingRepository
	DishRepo  *repository.DishRepository
	RestRepo  *repository.RestaurantRepository
	OrderRepo *repository.OrderRepository
}

func NewRatingService(
	repo *repository.RatingRepository,
	dishRepo *repository.DishRepository,
	restRepo *repository.RestaurantRepository,
	orderRepo *repository.OrderRepository,
) *RatingService {
	return &RatingService{Repo: repo, DishRepo: dishRepo, RestRepo: restRepo, OrderRepo: orderRepo}
}

type CreateRatingIn struct {
	EntityType string `json:"entityType" binding:"required,oneof=restaurant dish"`
	EntityID   uint   `json:"entityId" binding:"required"`
	Score      int    `json:"score" binding:"required,min=1,max=5"`
}

// resolveRestaurant maps a rating target onto the restaurant whose delivered
// orders entitle the user to rate it.
func (s *RatingService) resolveRestaurant(entityType string, entityID uint) (uint, error) {
	switch entityType {
	case entity.RatingEntityDish:
		d, err := s.DishRepo.GetByID(entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperr.NotFound("dish not found")
			}
			return 0, err
		}
		return d.RestaurantID, nil
	case entity.RatingEntityRestaurant:
		r, err := s.RestRepo.GetByID(entityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperr.NotFound("restaurant not found")
			}
			return 0, err
		}
		return r.ID, nil
	default:
		return 0, apperr.BadRequest("invalid entity type")
	}
}

func (s *RatingService) Create(userID uint, in *CreateRatingIn) (*entity.Rating, error) {
	restID, err := s.resolveRestaurant(in.EntityType, in.EntityID)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsForUserEntity(userID, in.EntityType, in.EntityID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("already rated")
	}

	entitled, err := s.OrderRepo.HasDeliveredForRestaurant(userID, restID)
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, apperr.Forbidden("no completed order for this entity")
	}

	rating := &entity.Rating{
		UserID:     userID,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Score:      in.Score,
	}
	if err := s.Repo.Create(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) ListForEntity(entityType string, entityID uint) ([]entity.Rating, error) {
	if _, err := s.resolveRestaurant(entityType, entityID); err != nil {
		return nil, err
	}
	return s.Repo.ListForEntity(entityType, entityID)
}

func (s *RatingService) Delete(userID, ratingID uint) error {
	affected, err := s.Repo.DeleteOwned(userID, ratingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("rating not found")
	}
	return nil
}
