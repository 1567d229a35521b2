package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/altiusfest/altius-api/internal/config"
	"github.com/altiusfest/altius-api/internal/repository/dao"
)

// OpenPostgres opens a connection using discrete config values and
// migrates the tables. The returned handle is injected into the API
// server; nothing in this codebase holds a package-level connection.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=disable",
		conf.Host, conf.User, conf.Password, conf.DBName, conf.Port,
	)

	return open(postgres.Open(dsn))
}

// OpenPostgresWithURL opens a connection from a single DATABASE_URL
// style connection string (used on hosted environments).
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(postgres.Open(url))
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}
