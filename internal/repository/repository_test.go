package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staybook/internal/database"
	"staybook/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// Each sqlite :memory: connection is its own database; pin the pool to
	// one connection so every operation sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, PasswordHash: "x", Role: domain.RoleGuest}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAccommodation(t *testing.T, db *gorm.DB, ownerID int64, name string) *domain.Accommodation {
	t.Helper()
	a := &domain.Accommodation{
		OwnerID:       ownerID,
		Name:          name,
		City:          "Bratislava",
		Country:       "Slovakia",
		Latitude:      48.1486,
		Longitude:     17.1077,
		MaxGuests:     4,
		PricePerNight: 80,
		Description:   "test listing",
		IBAN:          "SK0000000000000000000000",
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func ctx() context.Context { return context.Background() }
