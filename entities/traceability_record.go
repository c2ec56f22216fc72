package entities

import (
	"gorm.io/datatypes"
)

// TraceabilityRecord is one traceability entry anchored on-chain. The
// product ID is caller-supplied and immutable; both hashes arrive
// pre-computed and are stored opaquely.
type TraceabilityRecord struct {
	ProductID                 string         `gorm:"column:product_id;primaryKey" json:"product_id"`
	MetadataJSON              datatypes.JSON `gorm:"column:metadata_json" json:"metadata_json"`
	OnchainMetadataHash       string         `gorm:"column:onchain_metadata_hash" json:"onchain_metadata_hash"`
	BlockchainTransactionHash string         `gorm:"column:blockchain_transaction_hash" json:"blockchain_transaction_hash"`

	Timestamp
}

func (TraceabilityRecord) TableName() string {
	return "traceability_data"
}
