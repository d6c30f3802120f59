package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/cache"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository"
)

const (
	listCap = 50

	latestBlocksCount   = 6
	activityBlocksCount = 10
	recentTxLimit       = 10
	recentTxBlockScan   = 3

	fetchWorkers = 8

	fallbackEthPrice = 3000.0

	cacheKeyLatestBlocks  = "latest-blocks"
	cacheKeyLatestTxs     = "latest-transactions"
	cacheKeyNetworkStats  = "network-stats"
	cacheKeyNetworkActive = "network-activity"
)

// Explorer aggregates upstream datasets into dashboard payloads. It owns no
// request state: the hot cache and the store are shared across requests, the
// rest is pure request-scoped computation.
type Explorer struct {
	logs  *zap.SugaredLogger
	api   EtherscanAPI
	store Store
	hot   *cache.TTL[any]
	pool  pond.Pool
}

func NewExplorer(logger *zap.SugaredLogger, api EtherscanAPI, store Store, hot *cache.TTL[any]) *Explorer {
	return &Explorer{
		logs:  logger,
		api:   api,
		store: store,
		hot:   hot,
		pool:  pond.NewPool(fetchWorkers),
	}
}

// AnalyzeWallet fans out the five independent upstream calls, joins them, and
// fuses the result into one payload. Any failed branch fails the whole
// analysis; persistence failures do not.
func (e *Explorer) AnalyzeWallet(ctx context.Context, address string, startBlock int64) (*WalletAnalysis, error) {
	addr := strings.ToLower(address)

	var (
		txs       []etherscan.Transaction
		transfers []etherscan.TokenTransfer
		internals []etherscan.InternalTransaction
		nfts      []etherscan.TokenTransfer
		balance   string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = e.api.Transactions(gctx, addr, startBlock, 0)
		return err
	})
	g.Go(func() error {
		var err error
		transfers, err = e.api.TokenTransfers(gctx, addr, startBlock, 0)
		return err
	})
	g.Go(func() error {
		var err error
		internals, err = e.api.InternalTransactions(gctx, addr, startBlock, 0)
		return err
	})
	g.Go(func() error {
		var err error
		nfts, err = e.api.NFTTransfers(gctx, addr, startBlock, 0)
		return err
	})
	g.Go(func() error {
		var err error
		balance, err = e.api.Balance(gctx, addr)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch wallet datasets: %w", err)
	}

	txRecords := normalizeTransactions(txs)
	transferRecords := normalizeTokenTransfers(transfers)
	stats := ComputeTransactionStats(txRecords, addr, startBlock)

	analysis := &WalletAnalysis{
		Address:              addr,
		StartBlock:           startBlock,
		Balance:              balance,
		BalanceEth:           WeiStringToEth(balance),
		Transactions:         capList(txRecords, listCap),
		TokenTransfers:       capList(transferRecords, listCap),
		InternalTransactions: capList(normalizeInternalTransactions(internals), listCap),
		NFTTransfers:         capList(normalizeNFTTransfers(nfts), listCap),
		Stats:                stats,
		TokenBalances:        ComputeTokenLedger(transferRecords, addr),
	}

	e.persistScan(ctx, addr, balance, txRecords, transferRecords, stats)

	return analysis, nil
}

// WalletTransactions fetches and normalizes the transaction list plus its
// stats block, persisting new rows on the way out.
func (e *Explorer) WalletTransactions(ctx context.Context, address string, startBlock int64) (*TransactionsResult, error) {
	addr := strings.ToLower(address)

	txs, err := e.api.Transactions(ctx, addr, startBlock, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	records := normalizeTransactions(txs)
	stats := ComputeTransactionStats(records, addr, startBlock)

	e.persistScan(ctx, addr, "", records, nil, stats)

	return &TransactionsResult{
		Address:      addr,
		StartBlock:   startBlock,
		Transactions: capList(records, listCap),
		Stats:        stats,
	}, nil
}

func (e *Explorer) TokenTransfers(ctx context.Context, address string, startBlock int64) ([]TokenTransferRecord, error) {
	addr := strings.ToLower(address)

	transfers, err := e.api.TokenTransfers(ctx, addr, startBlock, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch token transfers: %w", err)
	}

	records := normalizeTokenTransfers(transfers)

	if err := e.store.UpsertTokenTransfers(ctx, toRepoTokenTransfers(records)); err != nil {
		e.logs.Errorw("failed to persist token transfers", "address", addr, "error", err)
	}

	return capList(records, listCap), nil
}

func (e *Explorer) InternalTransactions(ctx context.Context, address string, startBlock int64) ([]InternalTransactionRecord, error) {
	txs, err := e.api.InternalTransactions(ctx, strings.ToLower(address), startBlock, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch internal transactions: %w", err)
	}
	return capList(normalizeInternalTransactions(txs), listCap), nil
}

func (e *Explorer) NFTTransfers(ctx context.Context, address string, startBlock int64) ([]NFTTransferRecord, error) {
	transfers, err := e.api.NFTTransfers(ctx, strings.ToLower(address), startBlock, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch nft transfers: %w", err)
	}
	return capList(normalizeNFTTransfers(transfers), listCap), nil
}

func (e *Explorer) EventLogs(ctx context.Context, address string, fromBlock, toBlock int64) ([]EventLogRecord, error) {
	logs, err := e.api.Logs(ctx, strings.ToLower(address), fromBlock, toBlock)
	if err != nil {
		return nil, fmt.Errorf("fetch event logs: %w", err)
	}
	return normalizeEventLogs(logs), nil
}

func (e *Explorer) Balance(ctx context.Context, address string) (*BalanceResult, error) {
	addr := strings.ToLower(address)

	balance, err := e.api.Balance(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("fetch balance: %w", err)
	}

	return &BalanceResult{
		Address:    addr,
		Balance:    balance,
		BalanceEth: WeiStringToEth(balance),
	}, nil
}

// BalanceAtDate resolves the block closest at/before midnight UTC of the
// given date and reads the balance at that block.
func (e *Explorer) BalanceAtDate(ctx context.Context, address, date string) (*BalanceAtDateResult, error) {
	addr := strings.ToLower(address)

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", date, err)
	}

	block, err := e.api.BlockNumberByTimestamp(ctx, day.Unix())
	if err != nil {
		return nil, fmt.Errorf("resolve block for date: %w", err)
	}

	balance, err := e.api.BalanceAtBlock(ctx, addr, block)
	if err != nil {
		return nil, fmt.Errorf("fetch historical balance: %w", err)
	}

	if err := e.store.SaveBalanceSnapshot(ctx, repository.BalanceHistory{
		WalletAddress: addr,
		BlockNumber:   block,
		Balance:       balance,
		Timestamp:     day.Unix(),
	}); err != nil {
		e.logs.Errorw("failed to persist balance snapshot", "address", addr, "error", err)
	}

	return &BalanceAtDateResult{
		Address:     addr,
		Date:        date,
		BlockNumber: block,
		Balance:     balance,
		BalanceEth:  WeiStringToEth(balance),
	}, nil
}

// TransactionStatus combines the status call with the receipt; a missing
// receipt means the transaction is still pending, not a failure.
func (e *Explorer) TransactionStatus(ctx context.Context, hash string) (*TransactionStatusResult, error) {
	txHash := strings.ToLower(hash)

	status, err := e.api.TransactionStatus(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction status: %w", err)
	}

	result := &TransactionStatusResult{
		Hash:           txHash,
		IsError:        status.IsError == "1",
		ErrDescription: status.ErrDescription,
	}

	receipt, err := e.api.TransactionReceipt(ctx, txHash)
	switch {
	case errors.Is(err, etherscan.ErrNotFound):
		result.Status = "pending"
	case err != nil:
		e.logs.Warnw("failed to fetch transaction receipt", "hash", txHash, "error", err)
		result.Status = "pending"
	default:
		result.Receipt = &ReceiptRecord{
			Status:          receipt.Status,
			BlockNumber:     parseHexInt64(receipt.BlockNumber),
			GasUsed:         parseHexInt64(receipt.GasUsed),
			ContractAddress: strings.ToLower(receipt.ContractAddress),
			LogsCount:       len(receipt.Logs),
		}
		if receipt.Status == "0x1" {
			result.Status = "success"
		} else {
			result.Status = "failed"
		}
	}

	if result.IsError {
		result.Status = "failed"
	}

	return result, nil
}

// LatestBlocks returns the newest blocks, cached for the hot TTL. Individual
// block fetches that fail are logged and omitted rather than failing the list.
func (e *Explorer) LatestBlocks(ctx context.Context) ([]BlockSummary, error) {
	if v, ok := e.hot.Get(cacheKeyLatestBlocks); ok {
		return v.([]BlockSummary), nil
	}

	latest, err := e.api.LatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch latest block number: %w", err)
	}

	out := xsync.NewMap[int64, BlockSummary]()
	group := e.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for i := int64(0); i < latestBlocksCount && latest-i >= 0; i++ {
		number := latest - i
		group.Submit(func() {
			if groupCtx.Err() != nil {
				return
			}
			block, err := e.api.BlockByNumber(groupCtx, number, true)
			if err != nil {
				e.logs.Warnw("skipping block in latest-blocks", "block", number, "error", err)
				return
			}
			// reward is decoration; a failed lookup leaves it empty
			reward := ""
			if blockReward, err := e.api.BlockReward(groupCtx, number); err == nil {
				reward = blockReward.BlockReward
			}
			out.Store(number, summarizeBlock(block, reward))
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		e.logs.Warnw("some latest-block fetches failed", "error", err)
	}

	blocks := make([]BlockSummary, 0, latestBlocksCount)
	out.Range(func(_ int64, summary BlockSummary) bool {
		blocks = append(blocks, summary)
		return true
	})
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Number > blocks[j].Number })

	e.hot.Set(cacheKeyLatestBlocks, blocks)
	return blocks, nil
}

// LatestTransactions scans the newest blocks for non-zero-value transactions.
func (e *Explorer) LatestTransactions(ctx context.Context) ([]RecentTransaction, error) {
	if v, ok := e.hot.Get(cacheKeyLatestTxs); ok {
		return v.([]RecentTransaction), nil
	}

	latest, err := e.api.LatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch latest block number: %w", err)
	}

	recent := make([]RecentTransaction, 0, recentTxLimit)
	for i := int64(0); i < recentTxBlockScan && latest-i >= 0 && len(recent) < recentTxLimit; i++ {
		number := latest - i
		block, err := e.api.BlockByNumber(ctx, number, true)
		if err != nil {
			e.logs.Warnw("skipping block in latest-transactions", "block", number, "error", err)
			continue
		}
		for _, tx := range block.Transactions {
			wei := parseHexBig(tx.Value)
			if wei == "0" {
				continue
			}
			recent = append(recent, RecentTransaction{
				Hash:        strings.ToLower(tx.Hash),
				From:        strings.ToLower(tx.From),
				To:          strings.ToLower(tx.To),
				Value:       wei,
				ValueEth:    WeiStringToEth(wei),
				BlockNumber: parseHexInt64(tx.BlockNumber),
			})
			if len(recent) >= recentTxLimit {
				break
			}
		}
	}

	e.hot.Set(cacheKeyLatestTxs, recent)
	return recent, nil
}

// NetworkStats fetches price, gas and head block. Price and gas failures
// degrade to a block-number-only payload; only a total failure is an error.
func (e *Explorer) NetworkStats(ctx context.Context) (*NetworkStats, error) {
	if v, ok := e.hot.Get(cacheKeyNetworkStats); ok {
		return v.(*NetworkStats), nil
	}

	stats := &NetworkStats{}

	latest, blockErr := e.api.LatestBlockNumber(ctx)
	if blockErr == nil {
		stats.LatestBlock = latest
	} else {
		e.logs.Warnw("network stats: block number unavailable", "error", blockErr)
	}

	price, priceErr := e.api.EthPrice(ctx)
	if priceErr == nil {
		stats.EthUSD = price.EthUSD
		stats.EthBTC = price.EthBTC
	} else {
		e.logs.Warnw("network stats: price unavailable", "error", priceErr)
	}

	oracle, gasErr := e.api.GasOracle(ctx)
	if gasErr == nil {
		stats.SafeGasPrice = oracle.SafeGasPrice
		stats.ProposeGasPrice = oracle.ProposeGasPrice
		stats.FastGasPrice = oracle.FastGasPrice
	} else {
		e.logs.Warnw("network stats: gas oracle unavailable", "error", gasErr)
	}

	if blockErr != nil && priceErr != nil && gasErr != nil {
		return nil, fmt.Errorf("fetch network stats: %w", blockErr)
	}

	e.hot.Set(cacheKeyNetworkStats, stats)
	return stats, nil
}

// EthPriceHistory produces a synthetic daily price series anchored at the
// live price (or a fixed fallback when the price feed is down). The series is
// deterministic per calendar day so repeated calls agree.
func (e *Explorer) EthPriceHistory(ctx context.Context, days int) ([]PricePoint, error) {
	anchor := fallbackEthPrice
	if price, err := e.api.EthPrice(ctx); err == nil {
		if parsed, perr := decimal.NewFromString(price.EthUSD); perr == nil {
			anchor, _ = parsed.Float64()
		}
	} else {
		e.logs.Warnw("price history: falling back to default anchor", "error", err)
	}

	now := time.Now().UTC()
	points := make([]PricePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		ordinal := day.Unix() / 86400
		factor := 1 + 0.12*math.Sin(float64(ordinal)/9.0) + 0.05*math.Sin(float64(ordinal)/3.1)
		points = append(points, PricePoint{
			Date:  day.Format("2006-01-02"),
			Price: decimal.NewFromFloat(anchor * factor).StringFixed(2),
		})
	}
	return points, nil
}

// NetworkActivity reports per-block throughput for the newest blocks,
// omitting blocks that fail to fetch.
func (e *Explorer) NetworkActivity(ctx context.Context) ([]BlockActivity, error) {
	if v, ok := e.hot.Get(cacheKeyNetworkActive); ok {
		return v.([]BlockActivity), nil
	}

	latest, err := e.api.LatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch latest block number: %w", err)
	}

	out := xsync.NewMap[int64, BlockActivity]()
	group := e.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for i := int64(0); i < activityBlocksCount && latest-i >= 0; i++ {
		number := latest - i
		group.Submit(func() {
			if groupCtx.Err() != nil {
				return
			}
			block, err := e.api.BlockByNumber(groupCtx, number, true)
			if err != nil {
				e.logs.Warnw("skipping block in network-activity", "block", number, "error", err)
				return
			}
			gasUsed := parseHexInt64(block.GasUsed)
			gasLimit := parseHexInt64(block.GasLimit)
			utilization := "0.00"
			if gasLimit > 0 {
				utilization = decimal.NewFromInt(gasUsed).
					Div(decimal.NewFromInt(gasLimit)).
					Mul(decimal.NewFromInt(100)).
					StringFixed(2)
			}
			out.Store(number, BlockActivity{
				Number:           parseHexInt64(block.Number),
				TransactionCount: len(block.Transactions),
				GasUsed:          gasUsed,
				GasLimit:         gasLimit,
				Utilization:      utilization,
				Timestamp:        parseHexInt64(block.Timestamp),
			})
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		e.logs.Warnw("some network-activity fetches failed", "error", err)
	}

	activity := make([]BlockActivity, 0, activityBlocksCount)
	out.Range(func(_ int64, a BlockActivity) bool {
		activity = append(activity, a)
		return true
	})
	sort.Slice(activity, func(i, j int) bool { return activity[i].Number > activity[j].Number })

	e.hot.Set(cacheKeyNetworkActive, activity)
	return activity, nil
}

// persistScan writes the scan through to the store. Persistence is an audit
// trail, never a dependency of the read path: every failure is logged and
// swallowed.
func (e *Explorer) persistScan(ctx context.Context, address, balance string, txs []TransactionRecord, transfers []TokenTransferRecord, stats TransactionStats) {
	if err := e.store.UpsertWallet(ctx, address, stats.LastBlock); err != nil {
		e.logs.Errorw("failed to persist wallet", "address", address, "error", err)
	}

	if err := e.store.UpsertTransactions(ctx, toRepoTransactions(txs)); err != nil {
		e.logs.Errorw("failed to persist transactions", "address", address, "error", err)
	}

	if len(transfers) > 0 {
		if err := e.store.UpsertTokenTransfers(ctx, toRepoTokenTransfers(transfers)); err != nil {
			e.logs.Errorw("failed to persist token transfers", "address", address, "error", err)
		}
	}

	if balance != "" {
		if err := e.store.SaveBalanceSnapshot(ctx, repository.BalanceHistory{
			WalletAddress: address,
			BlockNumber:   stats.LastBlock,
			Balance:       balance,
			Timestamp:     time.Now().Unix(),
		}); err != nil {
			e.logs.Errorw("failed to persist balance snapshot", "address", address, "error", err)
		}
	}
}

func toRepoTransactions(records []TransactionRecord) []repository.Transaction {
	transactions := make([]repository.Transaction, 0, len(records))
	for _, r := range records {
		tx := repository.Transaction{
			Hash:        r.Hash,
			BlockNumber: r.BlockNumber,
			BlockHash:   r.BlockHash,
			FromAddress: r.From,
			Value:       r.Value,
			GasUsed:     r.GasUsed,
			GasPrice:    r.GasPrice,
			Timestamp:   r.Timestamp,
			IsError:     r.IsError,
		}
		if r.To != "" {
			to := r.To
			tx.ToAddress = &to
		}
		transactions = append(transactions, tx)
	}
	return transactions
}

func toRepoTokenTransfers(records []TokenTransferRecord) []repository.TokenTransfer {
	transfers := make([]repository.TokenTransfer, 0, len(records))
	for _, r := range records {
		transfers = append(transfers, repository.TokenTransfer{
			TransactionHash: r.TransactionHash,
			ContractAddress: r.ContractAddress,
			BlockNumber:     r.BlockNumber,
			FromAddress:     r.From,
			ToAddress:       r.To,
			Value:           r.Value,
			TokenName:       r.TokenName,
			TokenSymbol:     r.TokenSymbol,
			TokenDecimals:   r.TokenDecimals,
			Timestamp:       r.Timestamp,
		})
	}
	return transfers
}

func capList[T any](records []T, limit int) []T {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
