package traceability

import (
	"Food-Traceability-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TraceabilityRepository interface {
		CreateRecord(ctx context.Context, record *entities.TraceabilityRecord) (int64, error)
		CountRecords(ctx context.Context) (int64, error)
		ListRecordsPage(ctx context.Context, limit, offset int) ([]*entities.TraceabilityRecord, error)
		GetByProductID(ctx context.Context, productID string) (*entities.TraceabilityRecord, error)
	}

	traceabilityRepository struct {
		db *gorm.DB
	}
)

func NewTraceabilityRepository(db *gorm.DB) TraceabilityRepository {
	return &traceabilityRepository{db: db}
}

// CreateRecord inserts one record and reports the affected row count. A
// duplicate product_id surfaces as gorm.ErrDuplicatedKey through the
// driver's error translation.
func (r *traceabilityRepository) CreateRecord(ctx context.Context, record *entities.TraceabilityRecord) (int64, error) {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *traceabilityRepository) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.TraceabilityRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecordsPage returns records newest first. An offset past the last row
// yields an empty slice, not an error.
func (r *traceabilityRepository) ListRecordsPage(ctx context.Context, limit, offset int) ([]*entities.TraceabilityRecord, error) {
	var records []*entities.TraceabilityRecord
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *traceabilityRepository) GetByProductID(ctx context.Context, productID string) (*entities.TraceabilityRecord, error) {
	var record entities.TraceabilityRecord
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
