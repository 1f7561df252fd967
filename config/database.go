package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func DSN(cfg *Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName, cfg.DatabaseSchema)
}

// InitDB opens the connection. The schema itself is owned by the sql migrations.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   cfg.DatabaseSchema + ".",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, cfg.DatabaseSchema))
	if x.Error != nil {
		return nil, x.Error
	}
	return db, nil
}
