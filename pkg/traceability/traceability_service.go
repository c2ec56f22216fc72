package traceability

import (
	"Food-Traceability-Backend/domain"
	"Food-Traceability-Backend/entities"
	"Food-Traceability-Backend/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	TraceabilityService interface {
		CreateRecord(ctx context.Context, req domain.CreateFoodRecordRequest) error
		ListRecords(ctx context.Context, page, pageSize int) (domain.PaginatedFoodListResponse, error)
		GetRecordDetail(ctx context.Context, productID string) (domain.FoodRecordDetailResponse, error)
	}

	traceabilityService struct {
		traceabilityRepository TraceabilityRepository
	}
)

func NewTraceabilityService(traceabilityRepository TraceabilityRepository) TraceabilityService {
	return &traceabilityService{
		traceabilityRepository: traceabilityRepository,
	}
}

// CreateRecord stores a new traceability entry. The metadata document is
// persisted verbatim; a duplicate product ID is a conflict, never an
// overwrite. Raw store errors are logged here and classified before they
// reach the transport layer.
func (s *traceabilityService) CreateRecord(ctx context.Context, req domain.CreateFoodRecordRequest) error {
	if len(req.Metadata) == 0 || !json.Valid(req.Metadata) {
		return domain.ErrInvalidMetadata
	}

	record := &entities.TraceabilityRecord{
		ProductID:                 req.ProductID,
		MetadataJSON:              datatypes.JSON(req.Metadata),
		OnchainMetadataHash:       req.MetadataHashOnChain,
		BlockchainTransactionHash: req.TransactionHash,
	}

	rowsAffected, err := s.traceabilityRepository.CreateRecord(ctx, record)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProductIDExists
		}
		log.Printf("create food record %s: %v", req.ProductID, err)
		return domain.ErrDatabaseOperation
	}
	if rowsAffected == 0 {
		// The store accepted the insert but wrote nothing; anomalous, and
		// distinct from a conflict.
		log.Printf("create food record %s: no rows affected", req.ProductID)
		return domain.ErrNoRowsAffected
	}

	return nil
}

// ListRecords returns one page of records, newest first, with the display
// name projected out of each metadata document. When the table is empty the
// row fetch is skipped entirely.
func (s *traceabilityService) ListRecords(ctx context.Context, page, pageSize int) (domain.PaginatedFoodListResponse, error) {
	totalItems, err := s.traceabilityRepository.CountRecords(ctx)
	if err != nil {
		log.Printf("count food records: %v", err)
		return domain.PaginatedFoodListResponse{}, domain.ErrDatabaseOperation
	}

	p := utils.Paginate(totalItems, page, pageSize)

	if totalItems == 0 {
		return domain.PaginatedFoodListResponse{
			Items:      []domain.FoodListItem{},
			TotalItems: 0,
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalPages: 0,
		}, nil
	}

	records, err := s.traceabilityRepository.ListRecordsPage(ctx, p.PageSize, p.Offset)
	if err != nil {
		log.Printf("list food records page %d: %v", p.Page, err)
		return domain.PaginatedFoodListResponse{}, domain.ErrDatabaseOperation
	}

	items := make([]domain.FoodListItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.FoodListItem{
			ProductID:           record.ProductID,
			ProductName:         ExtractProductName(record.MetadataJSON),
			OnchainMetadataHash: record.OnchainMetadataHash,
			CreatedAt:           record.CreatedAt,
		})
	}

	return domain.PaginatedFoodListResponse{
		Items:      items,
		TotalItems: totalItems,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// GetRecordDetail is a point lookup by product ID. A missing record is a
// reportable not-found condition, unlike the create path's row-count check.
func (s *traceabilityService) GetRecordDetail(ctx context.Context, productID string) (domain.FoodRecordDetailResponse, error) {
	record, err := s.traceabilityRepository.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRecordDetailResponse{}, domain.ErrRecordNotFound
		}
		log.Printf("get food record %s: %v", productID, err)
		return domain.FoodRecordDetailResponse{}, domain.ErrDatabaseOperation
	}

	return domain.FoodRecordDetailResponse{
		ProductID:                 record.ProductID,
		MetadataJSON:              json.RawMessage(record.MetadataJSON),
		OnchainMetadataHash:       record.OnchainMetadataHash,
		BlockchainTransactionHash: record.BlockchainTransactionHash,
		CreatedAt:                 record.CreatedAt,
		UpdatedAt:                 record.UpdatedAt,
	}, nil
}
