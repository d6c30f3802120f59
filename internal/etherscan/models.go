package etherscan

import "encoding/json"

// apiResponse is the common Etherscan envelope. Result is kept raw because
// its shape depends on the module/action pair and can be a plain string on
// errors and "no data" replies.
type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// proxyResponse wraps module=proxy calls, which are raw JSON-RPC passthrough
// with hex-encoded fields instead of the status/message envelope.
type proxyResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *proxyError     `json:"error"`
}

type proxyError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Transaction is one entry of module=account&action=txlist. All numeric
// fields arrive as decimal strings; Value is Wei.
type Transaction struct {
	BlockNumber  string `json:"blockNumber"`
	TimeStamp    string `json:"timeStamp"`
	Hash         string `json:"hash"`
	BlockHash    string `json:"blockHash"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	Gas          string `json:"gas"`
	GasPrice     string `json:"gasPrice"`
	GasUsed      string `json:"gasUsed"`
	IsError      string `json:"isError"`
	Input        string `json:"input"`
	FunctionName string `json:"functionName"`
}

// TokenTransfer is one entry of action=tokentx (ERC-20) or action=tokennfttx
// (ERC-721, where TokenID is set and Value is absent).
type TokenTransfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
	TokenID         string `json:"tokenID"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	GasUsed         string `json:"gasUsed"`
}

// InternalTransaction is one entry of action=txlistinternal.
type InternalTransaction struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	IsError     string `json:"isError"`
	TraceID     string `json:"traceId"`
	Type        string `json:"type"`
}

// EventLog is one entry of module=logs&action=getLogs. Numeric fields are
// hex-encoded, unlike the account module.
type EventLog struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     string   `json:"blockNumber"`
	TimeStamp       string   `json:"timeStamp"`
	GasUsed         string   `json:"gasUsed"`
	LogIndex        string   `json:"logIndex"`
	TransactionHash string   `json:"transactionHash"`
}

// TxStatus is the module=transaction&action=getstatus result.
type TxStatus struct {
	IsError        string `json:"isError"`
	ErrDescription string `json:"errDescription"`
}

// Receipt is a trimmed proxy eth_getTransactionReceipt result; all fields hex.
type Receipt struct {
	Status          string            `json:"status"`
	BlockNumber     string            `json:"blockNumber"`
	GasUsed         string            `json:"gasUsed"`
	ContractAddress string            `json:"contractAddress"`
	Logs            []json.RawMessage `json:"logs"`
}

// Block is a proxy eth_getBlockByNumber result; all fields hex. Transactions
// holds full objects only when the call requested them, otherwise hashes.
type Block struct {
	Number       string             `json:"number"`
	Hash         string             `json:"hash"`
	Timestamp    string             `json:"timestamp"`
	GasUsed      string             `json:"gasUsed"`
	GasLimit     string             `json:"gasLimit"`
	Miner        string             `json:"miner"`
	Transactions []BlockTransaction `json:"transactions"`
}

// BlockTransaction is a full transaction object inside a proxy block.
type BlockTransaction struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	Gas         string `json:"gas"`
	GasPrice    string `json:"gasPrice"`
	BlockNumber string `json:"blockNumber"`
}

// BlockReward is the module=block&action=getblockreward result.
type BlockReward struct {
	BlockNumber          string `json:"blockNumber"`
	TimeStamp            string `json:"timeStamp"`
	BlockMiner           string `json:"blockMiner"`
	BlockReward          string `json:"blockReward"`
	UncleInclusionReward string `json:"uncleInclusionReward"`
}

// EthPrice is the module=stats&action=ethprice result.
type EthPrice struct {
	EthBTC          string `json:"ethbtc"`
	EthUSD          string `json:"ethusd"`
	EthUSDTimestamp string `json:"ethusd_timestamp"`
}

// GasOracle is the module=gastracker&action=gasoracle result.
type GasOracle struct {
	LastBlock       string `json:"LastBlock"`
	SafeGasPrice    string `json:"SafeGasPrice"`
	ProposeGasPrice string `json:"ProposeGasPrice"`
	FastGasPrice    string `json:"FastGasPrice"`
	SuggestBaseFee  string `json:"suggestBaseFee"`
}
