package repository

import (
	"context"
	"laundry-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductTypeRepo interface {
	List(ctx context.Context) ([]models.ProductType, error)
	BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ProductType, error)
	// SeedIfEmpty вставляет справочник, только если таблица пуста; повторный вызов безопасен.
	SeedIfEmpty(ctx context.Context, seed []models.ProductType) (int64, error)
}

type productTypeRepo struct{ db *gorm.DB }

func NewProductTypeRepo(db *gorm.DB) ProductTypeRepo { return &productTypeRepo{db: db} }

func (r *productTypeRepo) List(ctx context.Context) ([]models.ProductType, error) {
	var list []models.ProductType
	err := r.db.WithContext(ctx).Order("price ASC, name ASC").Find(&list).Error
	return list, err
}

func (r *productTypeRepo) BatchGetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.ProductType, error) {
	if len(ids) == 0 {
		return []models.ProductType{}, nil
	}

	var list []models.ProductType
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productTypeRepo) SeedIfEmpty(ctx context.Context, seed []models.ProductType) (int64, error) {
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&models.ProductType{}).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 || len(seed) == 0 {
			return nil
		}
		rows := make([]models.ProductType, len(seed))
		copy(rows, seed)
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		inserted = res.RowsAffected
		return res.Error
	})
	return inserted, err
}
