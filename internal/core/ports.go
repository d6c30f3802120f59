package core

import (
	"context"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name EtherscanAPI . EtherscanAPI
type EtherscanAPI interface {
	Transactions(ctx context.Context, address string, startBlock, endBlock int64) ([]etherscan.Transaction, error)
	TokenTransfers(ctx context.Context, address string, startBlock, endBlock int64) ([]etherscan.TokenTransfer, error)
	InternalTransactions(ctx context.Context, address string, startBlock, endBlock int64) ([]etherscan.InternalTransaction, error)
	NFTTransfers(ctx context.Context, address string, startBlock, endBlock int64) ([]etherscan.TokenTransfer, error)
	Balance(ctx context.Context, address string) (string, error)
	BalanceAtBlock(ctx context.Context, address string, block int64) (string, error)
	BlockNumberByTimestamp(ctx context.Context, timestamp int64) (int64, error)
	TransactionStatus(ctx context.Context, hash string) (etherscan.TxStatus, error)
	TransactionReceipt(ctx context.Context, hash string) (*etherscan.Receipt, error)
	Logs(ctx context.Context, address string, fromBlock, toBlock int64) ([]etherscan.EventLog, error)
	LatestBlockNumber(ctx context.Context) (int64, error)
	BlockByNumber(ctx context.Context, number int64, fullTxs bool) (*etherscan.Block, error)
	BlockReward(ctx context.Context, number int64) (etherscan.BlockReward, error)
	EthPrice(ctx context.Context) (etherscan.EthPrice, error)
	GasOracle(ctx context.Context) (etherscan.GasOracle, error)
}

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	CreateUser(ctx context.Context, username, password string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	UpsertWallet(ctx context.Context, address string, lastScannedBlock int64) error
	GetWallet(ctx context.Context, address string) (repository.Wallet, error)
	UpsertTransactions(ctx context.Context, transactions []repository.Transaction) error
	TransactionsByAddress(ctx context.Context, address string) ([]repository.Transaction, error)
	UpsertTokenTransfers(ctx context.Context, transfers []repository.TokenTransfer) error
	TokenTransfersByAddress(ctx context.Context, address string) ([]repository.TokenTransfer, error)
	SaveBalanceSnapshot(ctx context.Context, snapshot repository.BalanceHistory) error
	BalanceHistoryByAddress(ctx context.Context, address string) ([]repository.BalanceHistory, error)
}
