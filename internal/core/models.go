package core

// TransactionRecord is a normalized normal transaction. Value stays a Wei
// decimal string; ValueEth is derived at this edge for display only.
type TransactionRecord struct {
	Hash         string `json:"hash"`
	BlockNumber  int64  `json:"blockNumber"`
	BlockHash    string `json:"blockHash"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	ValueEth     string `json:"valueEth"`
	GasUsed      int64  `json:"gasUsed"`
	GasPrice     string `json:"gasPrice"`
	Timestamp    int64  `json:"timestamp"`
	IsError      bool   `json:"isError"`
	FunctionName string `json:"functionName,omitempty"`
}

type TokenTransferRecord struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     int64  `json:"blockNumber"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
	TokenName       string `json:"tokenName,omitempty"`
	TokenSymbol     string `json:"tokenSymbol,omitempty"`
	TokenDecimals   int    `json:"tokenDecimals"`
	Timestamp       int64  `json:"timestamp"`
}

type InternalTransactionRecord struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     int64  `json:"blockNumber"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ValueEth        string `json:"valueEth"`
	IsError         bool   `json:"isError"`
	Timestamp       int64  `json:"timestamp"`
}

type NFTTransferRecord struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     int64  `json:"blockNumber"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
	TokenName       string `json:"tokenName,omitempty"`
	TokenSymbol     string `json:"tokenSymbol,omitempty"`
	Timestamp       int64  `json:"timestamp"`
}

type EventLogRecord struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     int64    `json:"blockNumber"`
	LogIndex        int64    `json:"logIndex"`
	TransactionHash string   `json:"transactionHash"`
	Timestamp       int64    `json:"timestamp"`
}

type FunctionUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TokenBalance is the running signed ledger for one token contract, derived
// from transfer direction relative to the queried address.
type TokenBalance struct {
	ContractAddress   string `json:"contractAddress"`
	TokenName         string `json:"tokenName,omitempty"`
	TokenSymbol       string `json:"tokenSymbol,omitempty"`
	TokenDecimals     int    `json:"tokenDecimals"`
	Balance           string `json:"balance"` // raw token units, signed decimal string
	IncomingTransfers int    `json:"incomingTransfers"`
	OutgoingTransfers int    `json:"outgoingTransfers"`
}

type TransactionStats struct {
	TotalTransactions int             `json:"totalTransactions"`
	IncomingCount     int             `json:"incomingCount"`
	OutgoingCount     int             `json:"outgoingCount"`
	TotalReceivedWei  string          `json:"totalReceivedWei"`
	TotalSentWei      string          `json:"totalSentWei"`
	TotalVolumeWei    string          `json:"totalVolumeWei"`
	TotalReceivedEth  string          `json:"totalReceivedEth"`
	TotalSentEth      string          `json:"totalSentEth"`
	TotalVolumeEth    string          `json:"totalVolumeEth"`
	FirstBlock        int64           `json:"firstBlock"`
	LastBlock         int64           `json:"lastBlock"`
	AverageGasUsed    string          `json:"averageGasUsed"`
	AverageValueWei   string          `json:"averageValueWei"`
	AverageValueEth   string          `json:"averageValueEth"`
	TopFunctions      []FunctionUsage `json:"topFunctions"`
}

// WalletAnalysis is the full aggregation payload. List fields are capped for
// the UI; the stats are computed over the complete fetched sets.
type WalletAnalysis struct {
	Address              string                      `json:"address"`
	StartBlock           int64                       `json:"startBlock"`
	Balance              string                      `json:"balance"`
	BalanceEth           string                      `json:"balanceEth"`
	Transactions         []TransactionRecord         `json:"transactions"`
	TokenTransfers       []TokenTransferRecord       `json:"tokenTransfers"`
	InternalTransactions []InternalTransactionRecord `json:"internalTransactions"`
	NFTTransfers         []NFTTransferRecord         `json:"nftTransfers"`
	Stats                TransactionStats            `json:"stats"`
	TokenBalances        []TokenBalance              `json:"tokenBalances"`
}

type TransactionsResult struct {
	Address      string              `json:"address"`
	StartBlock   int64               `json:"startBlock"`
	Transactions []TransactionRecord `json:"transactions"`
	Stats        TransactionStats    `json:"stats"`
}

type BalanceResult struct {
	Address    string `json:"address"`
	Balance    string `json:"balance"`
	BalanceEth string `json:"balanceEth"`
}

type BalanceAtDateResult struct {
	Address     string `json:"address"`
	Date        string `json:"date"`
	BlockNumber int64  `json:"blockNumber"`
	Balance     string `json:"balance"`
	BalanceEth  string `json:"balanceEth"`
}

type ReceiptRecord struct {
	Status          string `json:"status"`
	BlockNumber     int64  `json:"blockNumber"`
	GasUsed         int64  `json:"gasUsed"`
	ContractAddress string `json:"contractAddress,omitempty"`
	LogsCount       int    `json:"logsCount"`
}

type TransactionStatusResult struct {
	Hash           string         `json:"hash"`
	Status         string         `json:"status"` // "success" | "failed" | "pending"
	IsError        bool           `json:"isError"`
	ErrDescription string         `json:"errDescription,omitempty"`
	Receipt        *ReceiptRecord `json:"receipt,omitempty"`
}

type BlockSummary struct {
	Number           int64  `json:"number"`
	Hash             string `json:"hash"`
	Miner            string `json:"miner"`
	Timestamp        int64  `json:"timestamp"`
	TransactionCount int    `json:"transactionCount"`
	GasUsed          int64  `json:"gasUsed"`
	GasLimit         int64  `json:"gasLimit"`
	Reward           string `json:"reward,omitempty"` // Wei, best effort
}

type RecentTransaction struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	ValueEth    string `json:"valueEth"`
	BlockNumber int64  `json:"blockNumber"`
}

// NetworkStats degrades gracefully: price/gas fields stay empty when their
// upstream calls fail, as long as at least one section could be fetched.
type NetworkStats struct {
	LatestBlock     int64  `json:"latestBlock"`
	EthUSD          string `json:"ethUsd,omitempty"`
	EthBTC          string `json:"ethBtc,omitempty"`
	SafeGasPrice    string `json:"safeGasPrice,omitempty"`
	ProposeGasPrice string `json:"proposeGasPrice,omitempty"`
	FastGasPrice    string `json:"fastGasPrice,omitempty"`
}

type PricePoint struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

type BlockActivity struct {
	Number           int64  `json:"number"`
	TransactionCount int    `json:"transactionCount"`
	GasUsed          int64  `json:"gasUsed"`
	GasLimit         int64  `json:"gasLimit"`
	Utilization      string `json:"utilization"` // percent of gas limit used
	Timestamp        int64  `json:"timestamp"`
}
