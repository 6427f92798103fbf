package services

import (
	"testing"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRatingService(db *gorm.DB) *RatingService {
	return NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewDishRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewOrderRepository(db),
	)
}

func deliverOrder(t *testing.T, db *gorm.DB, userID, restID uint) {
	t.Helper()
	o := createOrder(t, db, userID, entity.OrderStatusDelivered, 135)
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", o.ID).
		Update("restaurant_id", restID).Error)
}

func TestCreateRating(t *testing.T) {
	db := newTestDB(t)
	svc := newRatingService(db)

	owner := createUser(t, db, "rowner@test.io", entity.RoleRestaurantOwner)
	user := createUser(t, db, "rater@test.io", entity.RoleCustomer)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)
	dish := createDish(t, db, rest.ID, 80)

	// no delivered order yet
	_, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 4})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	deliverOrder(t, db, user.ID, rest.ID)

	r, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Score)

	// one rating per user per entity
	_, err = svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 5})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// a dish of the same restaurant rides on the same entitlement
	_, err = svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityDish, EntityID: dish.ID, Score: 5})
	require.NoError(t, err)
}

func TestCreateRating_EntityMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newRatingService(db)
	user := createUser(t, db, "ghost@test.io", entity.RoleCustomer)

	_, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityDish, EntityID: 9999, Score: 3})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: 9999, Score: 3})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListRatings(t *testing.T) {
	db := newTestDB(t)
	svc := newRatingService(db)

	owner := createUser(t, db, "lowner@test.io", entity.RoleRestaurantOwner)
	user := createUser(t, db, "lister@test.io", entity.RoleCustomer)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)
	deliverOrder(t, db, user.ID, rest.ID)

	_, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 5})
	require.NoError(t, err)

	out, err := svc.ListForEntity(entity.RatingEntityRestaurant, rest.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Score)

	_, err = svc.ListForEntity(entity.RatingEntityRestaurant, 9999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteRating_OwnOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newRatingService(db)

	owner := createUser(t, db, "downer@test.io", entity.RoleRestaurantOwner)
	user := createUser(t, db, "deleter@test.io", entity.RoleCustomer)
	other := createUser(t, db, "bystander@test.io", entity.RoleCustomer)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)
	deliverOrder(t, db, user.ID, rest.ID)

	r, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 2})
	require.NoError(t, err)

	err = svc.Delete(other.ID, r.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, svc.Delete(user.ID, r.ID))

	err = svc.Delete(user.ID, r.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteRating_FreesEntityForRerating(t *testing.T) {
	db := newTestDB(t)
	svc := newRatingService(db)

	owner := createUser(t, db, "reowner@test.io", entity.RoleRestaurantOwner)
	user := createUser(t, db, "rerater@test.io", entity.RoleCustomer)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)
	deliverOrder(t, db, user.ID, rest.ID)

	r, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 2})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(user.ID, r.ID))

	// the row is gone outright, so the unique (user, entity) slot is free again
	var count int64
	require.NoError(t, db.Unscoped().Model(&entity.Rating{}).
		Where("id = ?", r.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	again, err := svc.Create(user.ID, &CreateRatingIn{EntityType: entity.RatingEntityRestaurant, EntityID: rest.ID, Score: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, again.Score)
}
