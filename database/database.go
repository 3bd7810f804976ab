package database

import (
	"fmt"
	"strings"

	"github.com/rivnefurniture-lab/kurevin-art/config"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/inquiries"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/paintings"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/site"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/users"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects using the scheme of url: postgres:// or postgresql:// select
// Postgres, sqlite://path selects SQLite.
func Open(url string, verbose bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(level)}

	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return gorm.Open(postgres.Open(url), cfg)
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("DB_URL %q: missing sqlite path", url)
		}
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, err
		}
		// SQLite allows one writer; a single connection also keeps
		// :memory: databases shared.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("DB_URL %q: unsupported scheme", url)
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&paintings.Painting{},
		&paintings.PaintingI18n{},
		&inquiries.ContactMessage{},
		&users.Admin{},
		&site.SiteSetting{},
		&site.SiteSettingI18n{},
	)
}

// InitDB opens the configured database, migrates it and bootstraps the
// admin account. The connection is also stored in DB.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	log := logger.Get()

	db, err := Open(cfg.DBURL, cfg.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	created, err := users.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		log.Warn().Str("username", cfg.AdminUsername).Msg("admin account created with configured password; change it with `kurevin passwd`")
	}

	DB = db
	log.Info().Msg("connected and migrated")
	return db, nil
}
