package core

import (
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	weiDecimals     = 18
	ethDisplayDigits = 6
	topFunctionsN   = 3

	// entries without a functionName are plain value transfers
	defaultFunctionName = "Transfer"
)

// ComputeTransactionStats derives the summary block over a fetched
// transaction set. All Wei sums use big-integer arithmetic; averages are 0
// for an empty set, never NaN.
func ComputeTransactionStats(txs []TransactionRecord, address string, startBlock int64) TransactionStats {
	addr := strings.ToLower(address)

	received := new(big.Int)
	sent := new(big.Int)
	gasTotal := new(big.Int)
	valueTotal := new(big.Int)

	stats := TransactionStats{
		TotalTransactions: len(txs),
		FirstBlock:        startBlock,
		LastBlock:         startBlock,
		TopFunctions:      TopFunctions(txs, topFunctionsN),
	}

	for i, tx := range txs {
		value := parseBigOrZero(tx.Value)
		valueTotal.Add(valueTotal, value)
		gasTotal.Add(gasTotal, big.NewInt(tx.GasUsed))

		if strings.ToLower(tx.To) == addr {
			stats.IncomingCount++
			received.Add(received, value)
		}
		if strings.ToLower(tx.From) == addr {
			stats.OutgoingCount++
			sent.Add(sent, value)
		}

		if i == 0 || tx.BlockNumber < stats.FirstBlock {
			stats.FirstBlock = tx.BlockNumber
		}
		if i == 0 || tx.BlockNumber > stats.LastBlock {
			stats.LastBlock = tx.BlockNumber
		}
	}

	volume := new(big.Int).Add(received, sent)

	stats.TotalReceivedWei = received.String()
	stats.TotalSentWei = sent.String()
	stats.TotalVolumeWei = volume.String()
	stats.TotalReceivedEth = WeiToEth(received)
	stats.TotalSentEth = WeiToEth(sent)
	stats.TotalVolumeEth = WeiToEth(volume)

	if len(txs) == 0 {
		stats.AverageGasUsed = "0"
		stats.AverageValueWei = "0"
		stats.AverageValueEth = "0"
		return stats
	}

	count := decimal.NewFromInt(int64(len(txs)))
	stats.AverageGasUsed = decimal.NewFromBigInt(gasTotal, 0).Div(count).StringFixed(2)

	avgValue := decimal.NewFromBigInt(valueTotal, 0).Div(count)
	stats.AverageValueWei = avgValue.StringFixed(0)
	stats.AverageValueEth = avgValue.Shift(-weiDecimals).StringFixed(ethDisplayDigits)

	return stats
}

// TopFunctions returns the limit most frequently called contract functions,
// ordered by descending count; ties keep first-encountered order.
func TopFunctions(txs []TransactionRecord, limit int) []FunctionUsage {
	counts := make(map[string]int, len(txs))
	order := make([]string, 0, len(txs))

	for _, tx := range txs {
		name := functionName(tx.FunctionName)
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	usage := make([]FunctionUsage, 0, len(order))
	for _, name := range order {
		usage = append(usage, FunctionUsage{Name: name, Count: counts[name]})
	}

	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].Count > usage[j].Count
	})

	if len(usage) > limit {
		usage = usage[:limit]
	}
	return usage
}

// ComputeTokenLedger builds the per-contract running balance from transfer
// direction relative to address. Balances can go negative when the fetch
// window misses earlier acquisitions.
func ComputeTokenLedger(transfers []TokenTransferRecord, address string) []TokenBalance {
	addr := strings.ToLower(address)

	balances := make(map[string]*TokenBalance)
	running := make(map[string]*big.Int)
	order := []string{}

	for _, transfer := range transfers {
		contract := strings.ToLower(transfer.ContractAddress)
		entry, ok := balances[contract]
		if !ok {
			entry = &TokenBalance{
				ContractAddress: contract,
				TokenName:       transfer.TokenName,
				TokenSymbol:     transfer.TokenSymbol,
				TokenDecimals:   transfer.TokenDecimals,
			}
			balances[contract] = entry
			running[contract] = new(big.Int)
			order = append(order, contract)
		}

		value := parseBigOrZero(transfer.Value)
		if strings.ToLower(transfer.To) == addr {
			entry.IncomingTransfers++
			running[contract].Add(running[contract], value)
		}
		if strings.ToLower(transfer.From) == addr {
			entry.OutgoingTransfers++
			running[contract].Sub(running[contract], value)
		}
	}

	ledger := make([]TokenBalance, 0, len(order))
	for _, contract := range order {
		entry := balances[contract]
		entry.Balance = running[contract].String()
		ledger = append(ledger, *entry)
	}
	return ledger
}

// WeiToEth renders a Wei amount as a fixed-precision Eth string. Display
// only; stored values stay in base units.
func WeiToEth(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -weiDecimals).StringFixed(ethDisplayDigits)
}

// WeiStringToEth is WeiToEth over a decimal string; malformed input reads as 0.
func WeiStringToEth(wei string) string {
	return WeiToEth(parseBigOrZero(wei))
}

func functionName(raw string) string {
	if raw == "" {
		return defaultFunctionName
	}
	// upstream sends full signatures ("transfer(address _to, uint256 _value)")
	if idx := strings.Index(raw, "("); idx > 0 {
		return raw[:idx]
	}
	return raw
}

func parseBigOrZero(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}
