package repository

import (
	"dishpatch-be/entity"

	"gorm.io/gorm"
)

type RatingRepository struct{ DB *gorm.DB }

func NewRatingRepository(db *gorm.DB) *RatingRepository { return &RatingRepository{DB: db} }

func (r *RatingRepository) Create(rt *entity.Rating) error {
	return r.DB.Create(rt).Error
}

func (r *RatingRepository) ExistsForUserEntity(userID uint, entityType string, entityID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Rating{}).
		Where("user_id = ? AND entity_type = ? AND entity_id = ?", userID, entityType, entityID).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepository) ListForEntity(entityType string, entityID uint) ([]entity.Rating, error) {
	var out []entity.Rating
	err := r.DB.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id DESC").Find(&out).Error
	return out, err
}

// DeleteOwned removes a rating for good. A soft delete would keep the row in
// the (user, entity) unique index and block the user from ever rating again.
func (r *RatingRepository) DeleteOwned(userID, ratingID uint) (int64, error) {
	res := r.DB.Unscoped().Where("id = ? AND user_id = ?", ratingID, userID).Delete(&entity.Rating{})
	return res.RowsAffected, res.Error
}
