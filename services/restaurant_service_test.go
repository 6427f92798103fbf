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

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(
		repository.NewRestaurantRepository(db),
		repository.NewCityRepository(db),
		&fakeUploader{},
	)
}

func TestCreateRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newRestaurantService(db)

	owner := createUser(t, db, "create@test.io", entity.RoleRestaurantOwner)
	city := entity.City{Name: "Pune"}
	require.NoError(t, db.Create(&city).Error)

	r, err := svc.Create(owner.ID, &CreateRestaurantIn{
		Name: "Spice Route", Address: "2 Lake Rd", Category: entity.CategoryVeg, CityID: city.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, r.UserID)

	_, err = svc.Create(owner.ID, &CreateRestaurantIn{
		Name: "Nowhere", Address: "x", Category: entity.CategoryVeg, CityID: 9999,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRestaurant_Ownership(t *testing.T) {
	db := newTestDB(t)
	svc := newRestaurantService(db)

	owner := createUser(t, db, "rown@test.io", entity.RoleRestaurantOwner)
	intruder := createUser(t, db, "rintr@test.io", entity.RoleRestaurantOwner)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)

	name := "Taken Over"
	_, err := svc.Update(intruder.ID, false, rest.ID, &UpdateRestaurantIn{Name: &name})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	got, err := svc.Update(owner.ID, false, rest.ID, &UpdateRestaurantIn{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Taken Over", got.Name)

	// a missing restaurant is NotFound, never Forbidden
	_, err = svc.Update(intruder.ID, false, 9999, &UpdateRestaurantIn{Name: &name})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteRestaurant_HidesFromList(t *testing.T) {
	db := newTestDB(t)
	svc := newRestaurantService(db)

	owner := createUser(t, db, "hide@test.io", entity.RoleRestaurantOwner)
	rest := createRestaurant(t, db, owner.ID, entity.CategoryVeg)

	require.NoError(t, svc.Delete(owner.ID, false, rest.ID))

	_, err := svc.Get(rest.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	out, err := svc.List(0, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.Total)

	// the row survives as a soft delete
	var count int64
	require.NoError(t, db.Unscoped().Model(&entity.Restaurant{}).
		Where("id = ?", rest.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListRestaurants_CityFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newRestaurantService(db)

	owner := createUser(t, db, "filter@test.io", entity.RoleRestaurantOwner)
	restA := createRestaurant(t, db, owner.ID, entity.CategoryVeg)
	createRestaurant(t, db, owner.ID, entity.CategoryNonVeg)

	out, err := svc.List(restA.CityID, 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, out.Total)
	assert.Equal(t, restA.ID, out.Items[0].ID)

	all, err := svc.List(0, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
}
