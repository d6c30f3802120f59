package repository

import "time"

// Wallet is one row per tracked address; LastScannedBlock advances on every scan.
type Wallet struct {
	ID               uint   `gorm:"primaryKey"`
	Address          string `gorm:"size:42;uniqueIndex;not null"` // lowercase 0x + 40 hex
	LastScannedBlock int64  `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// Transaction is immutable once inserted; upserts on Hash are no-ops.
type Transaction struct {
	ID          uint    `gorm:"primaryKey"`
	Hash        string  `gorm:"size:66;uniqueIndex;not null"`
	BlockNumber int64   `gorm:"not null;index"`
	BlockHash   string  `gorm:"size:66;not null"`
	FromAddress string  `gorm:"size:42;not null;index"`
	ToAddress   *string `gorm:"size:42;index"`
	Value       string  `gorm:"size:100;not null"` // Wei, decimal string
	GasUsed     int64   `gorm:"not null;default:0"`
	GasPrice    string  `gorm:"size:100;not null"`
	Timestamp   int64   `gorm:"not null"`
	IsError     bool    `gorm:"not null;default:false"`
}

// TokenTransfer is unique per (transaction, contract): one transaction can
// move several distinct tokens.
type TokenTransfer struct {
	ID              uint   `gorm:"primaryKey"`
	TransactionHash string `gorm:"size:66;not null;uniqueIndex:uk_tx_contract"`
	ContractAddress string `gorm:"size:42;not null;uniqueIndex:uk_tx_contract"`
	BlockNumber     int64  `gorm:"not null;index"`
	FromAddress     string `gorm:"size:42;not null;index"`
	ToAddress       string `gorm:"size:42;not null;index"`
	Value           string `gorm:"size:100;not null"` // raw token units, decimal string
	TokenName       string `gorm:"size:255"`
	TokenSymbol     string `gorm:"size:64"`
	TokenDecimals   int    `gorm:"not null;default:0"`
	Timestamp       int64  `gorm:"not null"`
}

// BalanceHistory is an append-only snapshot log.
type BalanceHistory struct {
	ID            uint   `gorm:"primaryKey"`
	WalletAddress string `gorm:"size:42;not null;index"`
	BlockNumber   int64  `gorm:"not null"`
	Balance       string `gorm:"size:100;not null"` // Wei, decimal string
	Timestamp     int64  `gorm:"not null"`
}

// User is part of the schema but exercised by no request flow.
type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
