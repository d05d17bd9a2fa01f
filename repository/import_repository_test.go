package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"crm-service/models"
	"crm-service/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func strp(s string) *string { return &s }

func TestCountProjectsByName(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects"`)).
		WithArgs("Solar Grid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountProjectsByName(context.Background(), "Solar Grid")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountProjectsByIdentity_AllFields(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects"`)).
		WithArgs("Solar Grid", "%Region: Africa%", "%Department: Finance%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountProjectsByIdentity(context.Background(), "Solar Grid", strp("Africa"), strp("Finance"))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCountProjectsByIdentity_AbsentFieldsDropOut(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	// Only the name predicate remains when region and department are absent.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects"`)).
		WithArgs("Solar Grid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountProjectsByIdentity(context.Background(), "Solar Grid", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCountAccountsByNameAndIndustry(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "accounts"`)).
		WithArgs("Acme", "Finance").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountAccountsByNameAndIndustry(context.Background(), "Acme", "Finance")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCountAccountsByName(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "accounts"`)).
		WithArgs("Acme").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountAccountsByName(context.Background(), "Acme")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateProject(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New(),
		Name:           "Solar Grid",
		Status:         strp(models.StatusActive),
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "excel-import",
		ModifiedUserID: "excel-import",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "projects"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(project.ID))
	mock.ExpectCommit()

	err := repo.CreateProject(context.Background(), project)
	assert.NoError(t, err)
}

func TestCreateAccount(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormImportRepository(gormDB)

	now := time.Now().UTC()
	account := &models.Account{
		ID:             uuid.New(),
		Name:           "Acme",
		AccountType:    strp(models.AccountTypeCustomer),
		Industry:       strp("Finance"),
		DateEntered:    now,
		DateModified:   now,
		CreatedBy:      "csv-import",
		ModifiedUserID: "csv-import",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(account.ID))
	mock.ExpectCommit()

	err := repo.CreateAccount(context.Background(), account)
	assert.NoError(t, err)
}
