package configs

import (
	"fmt"

	"dishpatch-be/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dial = mysql.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting database: %w", err)
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.City{}, &entity.Restaurant{}, &entity.Dish{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.Payment{},
		&entity.Rating{},
	)
}
