package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrWalletNotFound error = errors.New("wallet not found")

// ExplorerRepository persists explorer data through a relational store. All
// address arguments are folded to lowercase before touching the database so
// lookups are case-insensitive.
type ExplorerRepository struct {
	db Storage
}

func NewExplorerRepository(storage Storage) *ExplorerRepository {
	return &ExplorerRepository{
		db: storage,
	}
}

func (r *ExplorerRepository) MigrateTables() error {
	err := r.db.MigrateTable(
		&Wallet{},
		&Transaction{},
		&TokenTransfer{},
		&BalanceHistory{},
		&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *ExplorerRepository) CreateUser(ctx context.Context, username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	users := []User{user}
	if err := r.db.SaveToTable(ctx, &users); err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (r *ExplorerRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// UpsertWallet records a scan of address up to lastScannedBlock, creating the
// wallet row on first sight and advancing the block cursor afterwards.
func (r *ExplorerRepository) UpsertWallet(ctx context.Context, address string, lastScannedBlock int64) error {
	wallet := Wallet{
		Address:          strings.ToLower(address),
		LastScannedBlock: lastScannedBlock,
	}
	err := r.db.UpsertUpdating(ctx, &wallet, []string{"address"}, []string{"last_scanned_block"})
	if err != nil {
		return fmt.Errorf("upsert wallet: %w", err)
	}
	return nil
}

func (r *ExplorerRepository) GetWallet(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet
	err := r.db.GetOneBy(ctx, "address", strings.ToLower(address), &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

// UpsertTransactions inserts transactions not seen before; rows already
// present (by hash) are left untouched.
func (r *ExplorerRepository) UpsertTransactions(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	for i := range transactions {
		transactions[i].Hash = strings.ToLower(transactions[i].Hash)
		transactions[i].FromAddress = strings.ToLower(transactions[i].FromAddress)
		if transactions[i].ToAddress != nil {
			lowered := strings.ToLower(*transactions[i].ToAddress)
			transactions[i].ToAddress = &lowered
		}
	}
	if err := r.db.UpsertToTable(ctx, &transactions, "hash"); err != nil {
		return fmt.Errorf("upsert transactions: %w", err)
	}
	return nil
}

func (r *ExplorerRepository) TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error) {
	addr := strings.ToLower(address)
	transactions := []Transaction{}
	err := r.db.GetAllWhere(ctx, "from_address = ? OR to_address = ?", &transactions, addr, addr)
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}
	return transactions, nil
}

// UpsertTokenTransfers inserts transfers not seen before, keyed by
// (transaction hash, contract address).
func (r *ExplorerRepository) UpsertTokenTransfers(ctx context.Context, transfers []TokenTransfer) error {
	if len(transfers) == 0 {
		return nil
	}
	for i := range transfers {
		transfers[i].TransactionHash = strings.ToLower(transfers[i].TransactionHash)
		transfers[i].ContractAddress = strings.ToLower(transfers[i].ContractAddress)
		transfers[i].FromAddress = strings.ToLower(transfers[i].FromAddress)
		transfers[i].ToAddress = strings.ToLower(transfers[i].ToAddress)
	}
	if err := r.db.UpsertToTable(ctx, &transfers, "transaction_hash", "contract_address"); err != nil {
		return fmt.Errorf("upsert token transfers: %w", err)
	}
	return nil
}

func (r *ExplorerRepository) TokenTransfersByAddress(ctx context.Context, address string) ([]TokenTransfer, error) {
	addr := strings.ToLower(address)
	transfers := []TokenTransfer{}
	err := r.db.GetAllWhere(ctx, "from_address = ? OR to_address = ?", &transfers, addr, addr)
	if err != nil {
		return nil, fmt.Errorf("get token transfers by address: %w", err)
	}
	return transfers, nil
}

// SaveBalanceSnapshot appends to the balance history log; no deduplication.
func (r *ExplorerRepository) SaveBalanceSnapshot(ctx context.Context, snapshot BalanceHistory) error {
	snapshot.WalletAddress = strings.ToLower(snapshot.WalletAddress)
	snapshots := []BalanceHistory{snapshot}
	if err := r.db.SaveToTable(ctx, &snapshots); err != nil {
		return fmt.Errorf("save balance snapshot: %w", err)
	}
	return nil
}

func (r *ExplorerRepository) BalanceHistoryByAddress(ctx context.Context, address string) ([]BalanceHistory, error) {
	history := []BalanceHistory{}
	err := r.db.GetAllBy(ctx, "wallet_address", strings.ToLower(address), &history)
	if err != nil {
		return nil, fmt.Errorf("get balance history: %w", err)
	}
	return history, nil
}
