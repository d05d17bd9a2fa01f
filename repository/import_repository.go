package repository

import (
	"context"

	"crm-service/models"

	"gorm.io/gorm"
)

// ImportRepository is the store surface the import pipeline needs: existence
// counts over identity fields plus parameterized inserts.
type ImportRepository interface {
	CountProjectsByName(ctx context.Context, name string) (int64, error)
	CountProjectsByIdentity(ctx context.Context, name string, region, department *string) (int64, error)
	CountAccountsByName(ctx context.Context, name string) (int64, error)
	CountAccountsByNameAndIndustry(ctx context.Context, name, industry string) (int64, error)
	CreateProject(ctx context.Context, project *models.Project) error
	CreateAccount(ctx context.Context, account *models.Account) error
}

type gormImportRepository struct {
	db *gorm.DB
}

func NewGormImportRepository(db *gorm.DB) ImportRepository {
	return &gormImportRepository{db: db}
}

func (r *gormImportRepository) CountProjectsByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("name = ?", name).
		Count(&count).Error
	return count, err
}

// CountProjectsByIdentity implements the legacy spreadsheet-import identity:
// exact name match plus substring probes against the synthesized description
// for whichever of region/department the incoming record carries. An absent
// field simply drops out of the predicate.
func (r *gormImportRepository) CountProjectsByIdentity(ctx context.Context, name string, region, department *string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Project{}).Where("name = ?", name)
	if region != nil {
		query = query.Where("description LIKE ?", "%Region: "+*region+"%")
	}
	if department != nil {
		query = query.Where("description LIKE ?", "%Department: "+*department+"%")
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *gormImportRepository) CountAccountsByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("name = ?", name).
		Count(&count).Error
	return count, err
}

func (r *gormImportRepository) CountAccountsByNameAndIndustry(ctx context.Context, name, industry string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("name = ? AND industry = ?", name, industry).
		Count(&count).Error
	return count, err
}

func (r *gormImportRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *gormImportRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}
