package services

import (
	"context"
	"testing"
	"time"

	"dishpatch-be/entity"
	"dishpatch-be/pkg/apperr"
	"dishpatch-be/repository"
	"dishpatch-be/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB, c *fakeCache, m *fakeMailer) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		c, m, zap.NewNop(),
		testSecret, time.Hour, 5*time.Minute,
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMailer{}
	svc := newAuthService(db, newFakeCache(), m)

	u, err := svc.Register(&RegisterIn{Name: "Asha", Email: "  Asha@Test.IO ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "asha@test.io", u.Email)
	assert.Equal(t, []string{entity.RoleCustomer}, u.RoleNames())
	assert.Len(t, m.sent, 1)

	// duplicate email, case-insensitive
	_, err = svc.Register(&RegisterIn{Name: "Asha", Email: "ASHA@test.io", Password: "secret1"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	token, logged, err := svc.Login("asha@test.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "asha@test.io", claims.Email)
	assert.Contains(t, claims.Roles, entity.RoleCustomer)

	_, _, err = svc.Login("asha@test.io", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	_, _, err = svc.Login("nobody@test.io", "secret1")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestOTPReset(t *testing.T) {
	db := newTestDB(t)
	c := newFakeCache()
	m := &fakeMailer{}
	svc := newAuthService(db, c, m)

	_, err := svc.Register(&RegisterIn{Name: "Ravi", Email: "ravi@test.io", Password: "oldpass"})
	require.NoError(t, err)

	ctx := context.Background()

	err = svc.SendOTP(ctx, "nobody@test.io")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, svc.SendOTP(ctx, "ravi@test.io"))
	code, err := c.Get(ctx, "otp:ravi@test.io")
	require.NoError(t, err)
	require.Len(t, code, 6)

	err = svc.ResetPassword(ctx, "ravi@test.io", "000000x", "newpass")
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	require.NoError(t, svc.ResetPassword(ctx, "ravi@test.io", code, "newpass"))

	// the code is single-use
	err = svc.ResetPassword(ctx, "ravi@test.io", code, "again")
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	_, _, err = svc.Login("ravi@test.io", "oldpass")
	assert.Error(t, err)
	_, _, err = svc.Login("ravi@test.io", "newpass")
	require.NoError(t, err)
}

func TestOTP_NotRequested(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, newFakeCache(), &fakeMailer{})

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := createUser(t, db, "cold@test.io", entity.RoleCustomer)
	require.NoError(t, db.Model(u).Update("password", string(hashed)).Error)

	err = svc.ResetPassword(context.Background(), "cold@test.io", "123456", "newpass")
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, newFakeCache(), &fakeMailer{})

	u, err := svc.Register(&RegisterIn{Name: "Mira", Email: "mira@test.io", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.UpdateProfile(u.ID, map[string]any{"name": "Mira K", "address": "5 Hill Rd"})
	require.NoError(t, err)
	assert.Equal(t, "Mira K", got.Name)
	assert.Equal(t, "5 Hill Rd", got.Address)

	_, err = svc.GetProfile(9999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
