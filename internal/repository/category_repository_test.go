package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	return gormDB, mock
}

func closeMockDB(gormDB *gorm.DB) {
	sqlDB, _ := gormDB.DB()
	sqlDB.Close()
}

func TestCategoryRepository_ListWithEventCounts_IncludesZeroCounts(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewCategoryRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "name", "event_count"}).
		AddRow(3, "Comedy", 0).
		AddRow(1, "Music", 4).
		AddRow(2, "Sports", 1)

	mock.ExpectQuery(`SELECT event_categories.id, event_categories.name, COUNT\(events.id\) AS event_count FROM`).
		WillReturnRows(rows)

	ctx := context.Background()
	categories, err := repo.ListWithEventCounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "Comedy", categories[0].Name)
	assert.Equal(t, int64(0), categories[0].EventCount)
	assert.Equal(t, "Music", categories[1].Name)
	assert.Equal(t, int64(4), categories[1].EventCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListWithEventCounts_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewCategoryRepository(gormDB)

	mock.ExpectQuery(`SELECT event_categories.id, event_categories.name, COUNT\(events.id\) AS event_count FROM`).
		WillReturnError(errors.New("database connection failed"))

	ctx := context.Background()
	categories, err := repo.ListWithEventCounts(ctx)

	assert.Error(t, err)
	assert.Nil(t, categories)
	assert.Contains(t, err.Error(), "database connection failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindByIDs_SubsetResult(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewCategoryRepository(gormDB)

	// Only one of the two requested ids exists; the missing id is simply
	// absent, not an error.
	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Music")

	mock.ExpectQuery("SELECT \\* FROM `event_categories` WHERE id IN").
		WithArgs(1, 99).
		WillReturnRows(rows)

	ctx := context.Background()
	categories, err := repo.FindByIDs(ctx, []uint{1, 99})

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, uint(1), categories[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindByName_CaseInsensitive(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewCategoryRepository(gormDB)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Music")

	mock.ExpectQuery("SELECT \\* FROM `event_categories` WHERE UPPER\\(name\\) = UPPER\\(\\?\\)").
		WithArgs("mUsIc").
		WillReturnRows(rows)

	ctx := context.Background()
	category, err := repo.FindByName(ctx, "mUsIc")

	assert.NoError(t, err)
	assert.Equal(t, "Music", category.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindByName_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewCategoryRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `event_categories` WHERE UPPER\\(name\\) = UPPER\\(\\?\\)").
		WithArgs("Opera").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	ctx := context.Background()
	category, err := repo.FindByName(ctx, "Opera")

	assert.Nil(t, category)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
