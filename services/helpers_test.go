package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"dishpatch-be/configs"
	"dishpatch-be/entity"
	"dishpatch-be/pkg/cache"
	"dishpatch-be/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database; name the DB and share the cache so transactions see the
	// migrated schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedRoles(db))
	return db
}

// ----- fakes -----

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+": "+subject)
	return nil
}

type fakeGateway struct {
	ok    bool
	err   error
	calls int
}

func (g *fakeGateway) Charge(_ context.Context, _ string, _ float64, _ string) (bool, error) {
	g.calls++
	return g.ok, g.err
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

// ----- fixtures -----

func createUser(t *testing.T, db *gorm.DB, email string, roleNames ...string) *entity.User {
	t.Helper()
	var roles []entity.Role
	for _, name := range roleNames {
		var r entity.Role
		require.NoError(t, db.Where("name = ?", name).First(&r).Error)
		roles = append(roles, r)
	}
	u := &entity.User{Name: "Test User", Email: email, Password: "hashed", Roles: roles}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, ownerID uint, category string) *entity.Restaurant {
	t.Helper()
	city := &entity.City{Name: "City-" + time.Now().Format("150405.000000000")}
	require.NoError(t, db.Create(city).Error)
	r := &entity.Restaurant{
		Name: "Testaurant", Address: "1 Main St", Category: category,
		CityID: city.ID, UserID: ownerID,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createDish(t *testing.T, db *gorm.DB, restID uint, price float64) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: "Dish", Price: price, Category: entity.CategoryVeg, RestaurantID: restID}
	require.NoError(t, db.Create(d).Error)
	return d
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewDishRepository(db))
}

func newOrderService(db *gorm.DB, m *fakeMailer) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		m, zap.NewNop(),
		5, 30,
	)
}
