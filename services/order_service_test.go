package services

import (
	"errors"
	"testing"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// placeFixture builds a user with an active cart worth 100 (4 x 25).
func placeFixture(t *testing.T, db *gorm.DB) (userID, cartID uint) {
	t.Helper()
	cartSvc := newCartService(db)

	user := createUser(t, db, "orders@test.io", entity.RoleCustomer)
	rest := createRestaurant(t, db, user.ID, entity.CategoryVeg)
	dish := createDish(t, db, rest.ID, 25)

	require.NoError(t, cartSvc.AddItem(user.ID, &AddItemIn{DishID: dish.ID, Quantity: 4}))
	out, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	return user.ID, out.Cart.ID
}

func TestPlace_ComputesCharges(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMailer{}
	svc := newOrderService(db, m)

	userID, cartID := placeFixture(t, db)

	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.OrderCharges)
	assert.Equal(t, 5.0, out.GST)
	assert.Equal(t, 30.0, out.DeliveryCharges)
	assert.Equal(t, 135.0, out.TotalAmount)

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	assert.Equal(t, cartID, order.CartID)

	var cart entity.Cart
	require.NoError(t, db.First(&cart, cartID).Error)
	assert.Equal(t, entity.CartStatusLocked, cart.Status)

	assert.Len(t, m.sent, 1)
}

func TestPlace_SelfServiceOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	userID, cartID := placeFixture(t, db)

	_, err := svc.Place(userID+1, userID, cartID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestPlace_CartNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})
	user := createUser(t, db, "nocart@test.io", entity.RoleCustomer)

	_, err := svc.Place(user.ID, user.ID, 42)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPlace_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	user := createUser(t, db, "emptyorder@test.io", entity.RoleCustomer)
	cart := entity.Cart{UserID: user.ID, Status: entity.CartStatusActive}
	require.NoError(t, db.Create(&cart).Error)

	_, err := svc.Place(user.ID, user.ID, cart.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestPlace_TwiceOnSameCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})
	cartSvc := newCartService(db)

	userID, cartID := placeFixture(t, db)

	_, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)

	// a repeat call names the real cause, not the now-locked cart
	_, err = svc.Place(userID, userID, cartID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.EqualError(t, err, "order already placed for this cart")

	// mutating the locked cart fails too
	err = cartSvc.RemoveItem(userID, cartID, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	err = cartSvc.Empty(userID, cartID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("cart_id = ?", cartID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlace_MailFailureDoesNotFailOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{err: errors.New("smtp down")})

	userID, cartID := placeFixture(t, db)

	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}

func TestDelete_OnlyWhilePreparing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	userID, cartID := placeFixture(t, db)
	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)

	// progressed orders cannot be deleted
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", out.ID).
		Update("status", entity.OrderStatusDelivered).Error)
	err = svc.Delete(userID, userID, out.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", out.ID).
		Update("status", entity.OrderStatusPreparing).Error)
	require.NoError(t, svc.Delete(userID, userID, out.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", out.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&entity.Cart{}).Where("id = ?", cartID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAssign(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	userID, cartID := placeFixture(t, db)
	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)

	partner := createUser(t, db, "partner@test.io", entity.RoleDeliveryPartner)
	notPartner := createUser(t, db, "civilian@test.io", entity.RoleCustomer)

	// target must hold the delivery role
	err = svc.Assign(out.ID, notPartner.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Nil(t, order.DeliveryPartnerID)

	require.NoError(t, svc.Assign(out.ID, partner.ID))
	require.NoError(t, db.First(&order, out.ID).Error)
	require.NotNil(t, order.DeliveryPartnerID)
	assert.Equal(t, partner.ID, *order.DeliveryPartnerID)

	// already assigned
	err = svc.Assign(out.ID, partner.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAssign_NotPreparing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	userID, cartID := placeFixture(t, db)
	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", out.ID).
		Update("status", entity.OrderStatusCancelled).Error)

	partner := createUser(t, db, "partner2@test.io", entity.RoleDeliveryPartner)
	err = svc.Assign(out.ID, partner.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Nil(t, order.DeliveryPartnerID)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeMailer{})

	userID, cartID := placeFixture(t, db)
	out, err := svc.Place(userID, userID, cartID)
	require.NoError(t, err)

	partner := createUser(t, db, "rider@test.io", entity.RoleDeliveryPartner)
	stranger := createUser(t, db, "stranger@test.io", entity.RoleDeliveryPartner)
	require.NoError(t, svc.Assign(out.ID, partner.ID))

	// only the bound partner may transition
	err = svc.UpdateStatus(stranger.ID, out.ID, entity.OrderStatusDelivered)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	err = svc.UpdateStatus(partner.ID, out.ID, "preparing")
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	require.NoError(t, svc.UpdateStatus(partner.ID, out.ID, entity.OrderStatusDelivered))

	// terminal states are final
	err = svc.UpdateStatus(partner.ID, out.ID, entity.OrderStatusCancelled)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	var order entity.Order
	require.NoError(t, db.First(&order, out.ID).Error)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}
