package core

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
)

// Normalization of upstream records: decimal-string fields are parsed to
// integers, hex fields decoded, addresses folded to lowercase, Wei values
// kept as decimal strings with an Eth display twin.

func normalizeTransactions(txs []etherscan.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, TransactionRecord{
			Hash:         strings.ToLower(tx.Hash),
			BlockNumber:  parseInt64(tx.BlockNumber),
			BlockHash:    strings.ToLower(tx.BlockHash),
			From:         strings.ToLower(tx.From),
			To:           strings.ToLower(tx.To),
			Value:        zeroIfEmpty(tx.Value),
			ValueEth:     WeiStringToEth(tx.Value),
			GasUsed:      parseInt64(tx.GasUsed),
			GasPrice:     zeroIfEmpty(tx.GasPrice),
			Timestamp:    parseInt64(tx.TimeStamp),
			IsError:      tx.IsError == "1",
			FunctionName: tx.FunctionName,
		})
	}
	return records
}

func normalizeTokenTransfers(transfers []etherscan.TokenTransfer) []TokenTransferRecord {
	records := make([]TokenTransferRecord, 0, len(transfers))
	for _, t := range transfers {
		records = append(records, TokenTransferRecord{
			TransactionHash: strings.ToLower(t.Hash),
			BlockNumber:     parseInt64(t.BlockNumber),
			From:            strings.ToLower(t.From),
			To:              strings.ToLower(t.To),
			ContractAddress: strings.ToLower(t.ContractAddress),
			Value:           zeroIfEmpty(t.Value),
			TokenName:       t.TokenName,
			TokenSymbol:     t.TokenSymbol,
			TokenDecimals:   int(parseInt64(t.TokenDecimal)),
			Timestamp:       parseInt64(t.TimeStamp),
		})
	}
	return records
}

func normalizeInternalTransactions(txs []etherscan.InternalTransaction) []InternalTransactionRecord {
	records := make([]InternalTransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, InternalTransactionRecord{
			TransactionHash: strings.ToLower(tx.Hash),
			BlockNumber:     parseInt64(tx.BlockNumber),
			From:            strings.ToLower(tx.From),
			To:              strings.ToLower(tx.To),
			Value:           zeroIfEmpty(tx.Value),
			ValueEth:        WeiStringToEth(tx.Value),
			IsError:         tx.IsError == "1",
			Timestamp:       parseInt64(tx.TimeStamp),
		})
	}
	return records
}

func normalizeNFTTransfers(transfers []etherscan.TokenTransfer) []NFTTransferRecord {
	records := make([]NFTTransferRecord, 0, len(transfers))
	for _, t := range transfers {
		records = append(records, NFTTransferRecord{
			TransactionHash: strings.ToLower(t.Hash),
			BlockNumber:     parseInt64(t.BlockNumber),
			From:            strings.ToLower(t.From),
			To:              strings.ToLower(t.To),
			ContractAddress: strings.ToLower(t.ContractAddress),
			TokenID:         t.TokenID,
			TokenName:       t.TokenName,
			TokenSymbol:     t.TokenSymbol,
			Timestamp:       parseInt64(t.TimeStamp),
		})
	}
	return records
}

// the logs module replies hex-encoded, unlike the account module
func normalizeEventLogs(logs []etherscan.EventLog) []EventLogRecord {
	records := make([]EventLogRecord, 0, len(logs))
	for _, l := range logs {
		records = append(records, EventLogRecord{
			Address:         strings.ToLower(l.Address),
			Topics:          l.Topics,
			Data:            l.Data,
			BlockNumber:     parseHexInt64(l.BlockNumber),
			LogIndex:        parseHexInt64(l.LogIndex),
			TransactionHash: strings.ToLower(l.TransactionHash),
			Timestamp:       parseHexInt64(l.TimeStamp),
		})
	}
	return records
}

func summarizeBlock(block *etherscan.Block, reward string) BlockSummary {
	return BlockSummary{
		Number:           parseHexInt64(block.Number),
		Hash:             strings.ToLower(block.Hash),
		Miner:            strings.ToLower(block.Miner),
		Timestamp:        parseHexInt64(block.Timestamp),
		TransactionCount: len(block.Transactions),
		GasUsed:          parseHexInt64(block.GasUsed),
		GasLimit:         parseHexInt64(block.GasLimit),
		Reward:           reward,
	}
}

func parseInt64(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseHexInt64(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0
	}
	return int64(v)
}

// parseHexBig decodes a hex quantity to a Wei decimal string.
func parseHexBig(s string) string {
	if s == "" || s == "0x" {
		return "0"
	}
	v, err := hexutil.DecodeBig(s)
	if err != nil {
		return "0"
	}
	return v.String()
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
