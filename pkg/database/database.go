package database

import (
	"fmt"
	"log"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/util"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates the schema and seeds the single instructor row.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Player{},
		&model.World{},
		&model.Tower{},
		&model.Level{},
		&model.Question{},
		&model.Answer{},
		&model.Progress{},
		&model.Response{},
		&model.Dungeon{},
		&model.Instructor{},
	)
	if err != nil {
		return err
	}

	var count int64
	db.Model(&model.Instructor{}).Count(&count)
	if count == 0 {
		instructor := &model.Instructor{
			InstructorName: util.InstructorName,
			Lock:           true,
		}
		if err := db.Create(instructor).Error; err != nil {
			return err
		}
	}

	log.Println("Database migration completed")
	return nil
}
