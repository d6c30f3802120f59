package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var ErrUpstream error = errors.New("upstream request failed")
var ErrNotFound error = errors.New("no result from upstream")

var errRateLimited error = errors.New("upstream rate limit reached")

const (
	// the explorer serves a single chain
	chainID = 1

	maxAttempts    = 3
	rateLimitDelay = 1000 * time.Millisecond
	retryDelay     = 500 * time.Millisecond

	statusOK = "1"

	// upstream treats an exhausted block range as "latest"
	latestBlock int64 = 99999999
)

// Client talks to an Etherscan-style data API. It is stateless: every method
// issues one HTTP GET (retried on rate limiting) and normalizes the response.
type Client struct {
	logs    *zap.SugaredLogger
	http    HTTPDoer
	baseURL string
	apiKey  string
}

func NewClient(logger *zap.SugaredLogger, doer HTTPDoer, baseURL, apiKey string) *Client {
	return &Client{
		logs:    logger,
		http:    doer,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Transactions lists normal transactions for an address in [startBlock, endBlock].
// An endBlock <= 0 means "latest". A "No transactions found" reply yields an
// empty slice, not an error.
func (c *Client) Transactions(ctx context.Context, address string, startBlock, endBlock int64) ([]Transaction, error) {
	txs := []Transaction{}
	if err := c.call(ctx, c.accountParams("txlist", address, startBlock, endBlock), &txs); err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	return txs, nil
}

// TokenTransfers lists ERC-20 transfers touching an address.
func (c *Client) TokenTransfers(ctx context.Context, address string, startBlock, endBlock int64) ([]TokenTransfer, error) {
	transfers := []TokenTransfer{}
	if err := c.call(ctx, c.accountParams("tokentx", address, startBlock, endBlock), &transfers); err != nil {
		return nil, fmt.Errorf("get token transfers: %w", err)
	}
	return transfers, nil
}

// InternalTransactions lists internal (message call) transactions for an address.
func (c *Client) InternalTransactions(ctx context.Context, address string, startBlock, endBlock int64) ([]InternalTransaction, error) {
	txs := []InternalTransaction{}
	if err := c.call(ctx, c.accountParams("txlistinternal", address, startBlock, endBlock), &txs); err != nil {
		return nil, fmt.Errorf("get internal transactions: %w", err)
	}
	return txs, nil
}

// NFTTransfers lists ERC-721 transfers touching an address.
func (c *Client) NFTTransfers(ctx context.Context, address string, startBlock, endBlock int64) ([]TokenTransfer, error) {
	transfers := []TokenTransfer{}
	if err := c.call(ctx, c.accountParams("tokennfttx", address, startBlock, endBlock), &transfers); err != nil {
		return nil, fmt.Errorf("get nft transfers: %w", err)
	}
	return transfers, nil
}

// Balance returns the current balance of an address in Wei, as a decimal string.
func (c *Client) Balance(ctx context.Context, address string) (string, error) {
	params := c.baseParams("account", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")

	var balance string
	if err := c.call(ctx, params, &balance); err != nil {
		return "", fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// BalanceAtBlock returns the balance of an address at a historical block,
// in Wei as a decimal string. The proxy module replies hex-encoded.
func (c *Client) BalanceAtBlock(ctx context.Context, address string, block int64) (string, error) {
	params := c.baseParams("proxy", "eth_getBalance")
	params.Set("address", address)
	params.Set("tag", hexutil.EncodeUint64(uint64(block)))

	var raw string
	if err := c.callProxy(ctx, params, &raw); err != nil {
		return "", fmt.Errorf("get balance at block %d: %w", block, err)
	}
	wei, err := hexutil.DecodeBig(raw)
	if err != nil {
		return "", fmt.Errorf("decode balance %q: %w", raw, err)
	}
	return wei.String(), nil
}

// BlockNumberByTimestamp resolves the closest block at or before a unix timestamp.
func (c *Client) BlockNumberByTimestamp(ctx context.Context, timestamp int64) (int64, error) {
	params := c.baseParams("block", "getblocknobytime")
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("closest", "before")

	var blockStr string
	if err := c.call(ctx, params, &blockStr); err != nil {
		return 0, fmt.Errorf("get block by timestamp: %w", err)
	}
	block, err := strconv.ParseInt(blockStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block number %q: %w", blockStr, err)
	}
	return block, nil
}

// TransactionStatus returns the execution status of a transaction.
func (c *Client) TransactionStatus(ctx context.Context, hash string) (TxStatus, error) {
	params := c.baseParams("transaction", "getstatus")
	params.Set("txhash", hash)

	var status TxStatus
	if err := c.call(ctx, params, &status); err != nil {
		return TxStatus{}, fmt.Errorf("get transaction status: %w", err)
	}
	return status, nil
}

// TransactionReceipt returns the receipt of a mined transaction, or
// ErrNotFound while it is still pending.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*Receipt, error) {
	params := c.baseParams("proxy", "eth_getTransactionReceipt")
	params.Set("txhash", hash)

	var receipt Receipt
	if err := c.callProxy(ctx, params, &receipt); err != nil {
		return nil, fmt.Errorf("get transaction receipt: %w", err)
	}
	return &receipt, nil
}

// Logs lists event logs emitted by an address in [fromBlock, toBlock].
func (c *Client) Logs(ctx context.Context, address string, fromBlock, toBlock int64) ([]EventLog, error) {
	params := c.baseParams("logs", "getLogs")
	params.Set("address", address)
	params.Set("fromBlock", strconv.FormatInt(fromBlock, 10))
	if toBlock <= 0 {
		params.Set("toBlock", "latest")
	} else {
		params.Set("toBlock", strconv.FormatInt(toBlock, 10))
	}

	logs := []EventLog{}
	if err := c.call(ctx, params, &logs); err != nil {
		return nil, fmt.Errorf("get event logs: %w", err)
	}
	return logs, nil
}

// LatestBlockNumber returns the current head block number.
func (c *Client) LatestBlockNumber(ctx context.Context) (int64, error) {
	var raw string
	if err := c.callProxy(ctx, c.baseParams("proxy", "eth_blockNumber"), &raw); err != nil {
		return 0, fmt.Errorf("get latest block number: %w", err)
	}
	number, err := hexutil.DecodeUint64(raw)
	if err != nil {
		return 0, fmt.Errorf("decode block number %q: %w", raw, err)
	}
	return int64(number), nil
}

// BlockByNumber fetches one block through the proxy module. With fullTxs the
// block carries complete transaction objects instead of hashes.
func (c *Client) BlockByNumber(ctx context.Context, number int64, fullTxs bool) (*Block, error) {
	params := c.baseParams("proxy", "eth_getBlockByNumber")
	params.Set("tag", hexutil.EncodeUint64(uint64(number)))
	params.Set("boolean", strconv.FormatBool(fullTxs))

	var block Block
	if err := c.callProxy(ctx, params, &block); err != nil {
		return nil, fmt.Errorf("get block %d: %w", number, err)
	}
	return &block, nil
}

// BlockReward returns the mining reward paid for a block.
func (c *Client) BlockReward(ctx context.Context, number int64) (BlockReward, error) {
	params := c.baseParams("block", "getblockreward")
	params.Set("blockno", strconv.FormatInt(number, 10))

	var reward BlockReward
	if err := c.call(ctx, params, &reward); err != nil {
		return BlockReward{}, fmt.Errorf("get block reward: %w", err)
	}
	return reward, nil
}

// EthPrice returns the current ETH market price.
func (c *Client) EthPrice(ctx context.Context) (EthPrice, error) {
	var price EthPrice
	if err := c.call(ctx, c.baseParams("stats", "ethprice"), &price); err != nil {
		return EthPrice{}, fmt.Errorf("get eth price: %w", err)
	}
	return price, nil
}

// GasOracle returns current gas price estimates.
func (c *Client) GasOracle(ctx context.Context) (GasOracle, error) {
	var oracle GasOracle
	if err := c.call(ctx, c.baseParams("gastracker", "gasoracle"), &oracle); err != nil {
		return GasOracle{}, fmt.Errorf("get gas oracle: %w", err)
	}
	return oracle, nil
}

func (c *Client) baseParams(module, action string) url.Values {
	params := url.Values{}
	params.Set("module", module)
	params.Set("action", action)
	params.Set("chainid", strconv.Itoa(chainID))
	return params
}

func (c *Client) accountParams(action, address string, startBlock, endBlock int64) url.Values {
	if startBlock < 0 {
		startBlock = 0
	}
	if endBlock <= 0 {
		endBlock = latestBlock
	}
	params := c.baseParams("account", action)
	params.Set("address", address)
	params.Set("startblock", strconv.FormatInt(startBlock, 10))
	params.Set("endblock", strconv.FormatInt(endBlock, 10))
	params.Set("sort", "desc")
	return params
}

// call performs a GET against the status/message envelope modules and decodes
// the result into out. "No data" replies leave out untouched and return nil.
func (c *Client) call(ctx context.Context, params url.Values, out any) error {
	raw, err := c.fetch(ctx, params)
	if err != nil {
		return err
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	if envelope.Status == statusOK {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		return nil
	}

	// the upstream signals "nothing matched" as an error-shaped reply;
	// callers must see an empty result instead
	if isNoData(envelope.Message) {
		return nil
	}

	detail := strings.Trim(string(envelope.Result), `"`)
	if detail == "" || detail == "null" {
		detail = envelope.Message
	}
	return fmt.Errorf("%w: %s", ErrUpstream, detail)
}

// callProxy performs a GET against the JSON-RPC passthrough module.
func (c *Client) callProxy(ctx context.Context, params url.Values, out any) error {
	raw, err := c.fetch(ctx, params)
	if err != nil {
		return err
	}

	var envelope proxyResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode proxy envelope: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%w: %s", ErrUpstream, envelope.Error.Message)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode proxy result: %w", err)
	}
	return nil
}

// fetch performs the HTTP round trip with bounded retries: a detected rate
// limit waits rateLimitDelay before the next attempt, any other failure waits
// retryDelay.
func (c *Client) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return fmt.Errorf("create request: %w", err)
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return fmt.Errorf("perform request: %w", err)
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response body: %w", err)
			}

			if resp.StatusCode == http.StatusTooManyRequests || isRateLimited(raw) {
				return errRateLimited
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("%w: unexpected status %s", ErrUpstream, resp.Status)
			}

			body = raw
			return nil
		},
		retry.Attempts(maxAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			if errors.Is(err, errRateLimited) {
				return rateLimitDelay
			}
			return retryDelay
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logs.Warnw("retrying upstream request",
				"attempt", n+1,
				"module", params.Get("module"),
				"action", params.Get("action"),
				"error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func isRateLimited(body []byte) bool {
	return strings.Contains(strings.ToLower(string(body)), "rate limit")
}

func isNoData(message string) bool {
	msg := strings.ToLower(message)
	return strings.HasPrefix(msg, "no transactions found") ||
		strings.HasPrefix(msg, "no records found") ||
		strings.HasPrefix(msg, "no data found")
}
