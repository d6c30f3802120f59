package handler

import (
	"context"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExplorerService . ExplorerService
type ExplorerService interface {
	AnalyzeWallet(ctx context.Context, address string, startBlock int64) (*core.WalletAnalysis, error)
	WalletTransactions(ctx context.Context, address string, startBlock int64) (*core.TransactionsResult, error)
	TokenTransfers(ctx context.Context, address string, startBlock int64) ([]core.TokenTransferRecord, error)
	InternalTransactions(ctx context.Context, address string, startBlock int64) ([]core.InternalTransactionRecord, error)
	NFTTransfers(ctx context.Context, address string, startBlock int64) ([]core.NFTTransferRecord, error)
	EventLogs(ctx context.Context, address string, fromBlock, toBlock int64) ([]core.EventLogRecord, error)
	Balance(ctx context.Context, address string) (*core.BalanceResult, error)
	BalanceAtDate(ctx context.Context, address, date string) (*core.BalanceAtDateResult, error)
	TransactionStatus(ctx context.Context, hash string) (*core.TransactionStatusResult, error)
	LatestBlocks(ctx context.Context) ([]core.BlockSummary, error)
	LatestTransactions(ctx context.Context) ([]core.RecentTransaction, error)
	NetworkStats(ctx context.Context) (*core.NetworkStats, error)
	EthPriceHistory(ctx context.Context, days int) ([]core.PricePoint, error)
	NetworkActivity(ctx context.Context) ([]core.BlockActivity, error)
}
