package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore keeps explorer data in process memory. It is selected at
// bootstrap when no database connection string is configured and mirrors the
// relational store's semantics: lowercase addresses, insert-if-absent
// transactions and transfers, in-place wallet updates.
type MemoryStore struct {
	mu sync.RWMutex

	users          []User
	wallets        []Wallet
	transactions   []Transaction
	tokenTransfers []TokenTransfer
	balanceHistory []BalanceHistory

	nextWalletID   uint
	nextTxID       uint
	nextTransferID uint
	nextSnapshotID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextWalletID:   1,
		nextTxID:       1,
		nextTransferID: 1,
		nextSnapshotID: 1,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return User{}, fmt.Errorf("username %q already taken", username)
		}
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *MemoryStore) UpsertWallet(ctx context.Context, address string, lastScannedBlock int64) error {
	addr := strings.ToLower(address)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wallets {
		if s.wallets[i].Address == addr {
			s.wallets[i].LastScannedBlock = lastScannedBlock
			return nil
		}
	}

	s.wallets = append(s.wallets, Wallet{
		ID:               s.nextWalletID,
		Address:          addr,
		LastScannedBlock: lastScannedBlock,
		CreatedAt:        time.Now(),
	})
	s.nextWalletID++
	return nil
}

func (s *MemoryStore) GetWallet(ctx context.Context, address string) (Wallet, error) {
	addr := strings.ToLower(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wallets {
		if w.Address == addr {
			return w, nil
		}
	}
	return Wallet{}, ErrWalletNotFound
}

func (s *MemoryStore) UpsertTransactions(ctx context.Context, transactions []Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.transactions))
	for _, tx := range s.transactions {
		seen[tx.Hash] = struct{}{}
	}

	for _, tx := range transactions {
		tx.Hash = strings.ToLower(tx.Hash)
		if _, ok := seen[tx.Hash]; ok {
			continue
		}
		seen[tx.Hash] = struct{}{}

		tx.FromAddress = strings.ToLower(tx.FromAddress)
		if tx.ToAddress != nil {
			lowered := strings.ToLower(*tx.ToAddress)
			tx.ToAddress = &lowered
		}
		tx.ID = s.nextTxID
		s.nextTxID++
		s.transactions = append(s.transactions, tx)
	}
	return nil
}

func (s *MemoryStore) TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error) {
	addr := strings.ToLower(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Transaction{}
	for _, tx := range s.transactions {
		if tx.FromAddress == addr || (tx.ToAddress != nil && *tx.ToAddress == addr) {
			matches = append(matches, tx)
		}
	}
	return matches, nil
}

func (s *MemoryStore) UpsertTokenTransfers(ctx context.Context, transfers []TokenTransfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.tokenTransfers))
	for _, t := range s.tokenTransfers {
		seen[t.TransactionHash+"/"+t.ContractAddress] = struct{}{}
	}

	for _, t := range transfers {
		t.TransactionHash = strings.ToLower(t.TransactionHash)
		t.ContractAddress = strings.ToLower(t.ContractAddress)

		key := t.TransactionHash + "/" + t.ContractAddress
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		t.FromAddress = strings.ToLower(t.FromAddress)
		t.ToAddress = strings.ToLower(t.ToAddress)
		t.ID = s.nextTransferID
		s.nextTransferID++
		s.tokenTransfers = append(s.tokenTransfers, t)
	}
	return nil
}

func (s *MemoryStore) TokenTransfersByAddress(ctx context.Context, address string) ([]TokenTransfer, error) {
	addr := strings.ToLower(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []TokenTransfer{}
	for _, t := range s.tokenTransfers {
		if t.FromAddress == addr || t.ToAddress == addr {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

func (s *MemoryStore) SaveBalanceSnapshot(ctx context.Context, snapshot BalanceHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot.WalletAddress = strings.ToLower(snapshot.WalletAddress)
	snapshot.ID = s.nextSnapshotID
	s.nextSnapshotID++
	s.balanceHistory = append(s.balanceHistory, snapshot)
	return nil
}

func (s *MemoryStore) BalanceHistoryByAddress(ctx context.Context, address string) ([]BalanceHistory, error) {
	addr := strings.ToLower(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []BalanceHistory{}
	for _, snap := range s.balanceHistory {
		if snap.WalletAddress == addr {
			matches = append(matches, snap)
		}
	}
	return matches, nil
}
