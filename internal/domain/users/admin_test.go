package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Admin{}))
	return db
}

func TestHashPassword_IsSaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("secret")
	require.NoError(t, err)
	h2, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", h1)
	assert.NotEqual(t, h1, h2)

	a := Admin{PasswordHash: h1}
	assert.True(t, a.CheckPassword("secret"))
	assert.False(t, a.CheckPassword("Secret"))
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := setupUsersTestDB(t)

	created, err := EnsureAdmin(db, "admin", "first")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(db, "admin", "second")
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	db.Model(&Admin{}).Count(&n)
	assert.Equal(t, int64(1), n)

	_, err = Authenticate(db, "admin", "first")
	assert.NoError(t, err, "existing password must survive a second bootstrap")
}

func TestEnsureAdmin_RenamedUsernameKeepsSingleAccount(t *testing.T) {
	db := setupUsersTestDB(t)

	created, err := EnsureAdmin(db, "admin", "first")
	require.NoError(t, err)
	require.True(t, created)

	created, err = EnsureAdmin(db, "olena", "second")
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	db.Model(&Admin{}).Count(&n)
	assert.Equal(t, int64(1), n)

	_, err = Authenticate(db, "olena", "second")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate(db, "admin", "first")
	assert.NoError(t, err)
}

func TestAuthenticate_GenericFailure(t *testing.T) {
	db := setupUsersTestDB(t)
	_, err := EnsureAdmin(db, "admin", "kurevin2026")
	require.NoError(t, err)

	a, err := Authenticate(db, "admin", "kurevin2026")
	require.NoError(t, err)
	assert.Equal(t, "admin", a.Username)

	_, wrongPassword := Authenticate(db, "admin", "nope")
	_, unknownUser := Authenticate(db, "ghost", "kurevin2026")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestResetPassword(t *testing.T) {
	db := setupUsersTestDB(t)
	_, err := EnsureAdmin(db, "admin", "old")
	require.NoError(t, err)

	require.NoError(t, ResetPassword(db, "admin", "new"))
	_, err = Authenticate(db, "admin", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate(db, "admin", "new")
	assert.NoError(t, err)

	assert.ErrorIs(t, ResetPassword(db, "ghost", "x"), ErrNotFound)
}
