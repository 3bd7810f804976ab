package site

import (
	"testing"

	"github.com/rivnefurniture-lab/kurevin-art/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&SiteSetting{}, &SiteSettingI18n{}))
	return db
}

func TestValue_Missing(t *testing.T) {
	db := setupSiteTestDB(t)
	v, ok, err := Value(db, AboutText, i18n.English)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestValue_LocalizedWithFallback(t *testing.T) {
	db := setupSiteTestDB(t)
	require.NoError(t, Put(db, AboutText, i18n.Localized{
		i18n.Ukrainian: "Про мене",
		i18n.English:   "About me",
	}))

	v, ok, err := Value(db, AboutText, i18n.Ukrainian)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Про мене", v)

	v, ok, err = Value(db, AboutText, i18n.Lang("de"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "About me", v)

	_, ok, err = Value(db, AboutText, i18n.Russian)
	require.NoError(t, err)
	assert.False(t, ok, "blank value does not fall back")
}

func TestPut_Replaces(t *testing.T) {
	db := setupSiteTestDB(t)
	require.NoError(t, Put(db, AboutText, i18n.Localized{i18n.English: "old"}))
	require.NoError(t, Put(db, AboutText, i18n.Localized{i18n.English: "new"}))

	v, _, err := Value(db, AboutText, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	var n int64
	db.Model(&SiteSetting{}).Count(&n)
	assert.Equal(t, int64(1), n)
}
