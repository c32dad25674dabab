// Package repository provides the data access layer.
package repository

import (
	"context"
	"fmt"

	"github.com/hardeep652/sihhackathon/internal/model"
	"gorm.io/gorm"
)

// RecordRepository reads the groundwater dataset from MySQL. The table is
// provisioned and filled out of band; this service only ever reads it.
type RecordRepository interface {
	FindAll(ctx context.Context) ([]model.GroundwaterRecord, error)
}

type gormRecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a RecordRepository backed by gorm.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

// FindAll loads every stored record in primary key order, so the distinct
// district scan sees the same order on every load.
func (r *gormRecordRepository) FindAll(ctx context.Context) ([]model.GroundwaterRecord, error) {
	var records []model.GroundwaterRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load groundwater records: %w", err)
	}
	return records, nil
}
