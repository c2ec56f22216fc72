package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessHealthCheck  = "API is UP and running!"
	MessageSuccessCreateRecord = "food record %s created successfully"

	MessageFailedCreateRecord = "failed to create food record"
	MessageFailedListRecords  = "failed to retrieve food records"
	MessageFailedRecordDetail = "failed to retrieve food record detail"
	MessageRecordNotFound     = "food record with product ID '%s' not found"
	MessageProductIDExists    = "product ID '%s' already exists"
	MessageInvalidMetadata    = "metadata in request is not valid JSON"

	ErrRecordNotFound    = errors.New("food record not found")
	ErrProductIDExists   = errors.New("product id already exists")
	ErrInvalidMetadata   = errors.New("invalid metadata document")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrNoRowsAffected    = errors.New("insert reported success but affected no rows")
)

type (
	// CreateFoodRecordRequest carries the frontend's camelCase field names.
	// Metadata is kept as raw JSON so callers can ship any document shape.
	CreateFoodRecordRequest struct {
		ProductID           string          `json:"productId" validate:"required"`
		Metadata            json.RawMessage `json:"metadata" validate:"required"`
		MetadataHashOnChain string          `json:"metadataHashOnChain" validate:"required"`
		TransactionHash     string          `json:"transactionHash" validate:"required"`
	}

	// FoodListItem omits the full metadata and transaction hash to keep list
	// payloads small; ProductName is best-effort extracted from the metadata.
	FoodListItem struct {
		ProductID           string    `json:"product_id"`
		ProductName         *string   `json:"product_name"`
		OnchainMetadataHash string    `json:"onchain_metadata_hash"`
		CreatedAt           time.Time `json:"created_at"`
	}

	PaginatedFoodListResponse struct {
		Items      []FoodListItem `json:"items"`
		TotalItems int64          `json:"total_items"`
		Page       int            `json:"page"`
		PageSize   int            `json:"page_size"`
		TotalPages int64          `json:"total_pages"`
	}

	FoodRecordDetailResponse struct {
		ProductID                 string          `json:"product_id"`
		MetadataJSON              json.RawMessage `json:"metadata_json"`
		OnchainMetadataHash       string          `json:"onchain_metadata_hash"`
		BlockchainTransactionHash string          `json:"blockchain_transaction_hash"`
		CreatedAt                 time.Time       `json:"created_at"`
		UpdatedAt                 time.Time       `json:"updated_at"`
	}
)
