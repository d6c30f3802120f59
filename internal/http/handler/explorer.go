package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/handler/middleware"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/payload"
)

var (
	AnalyzeWallet           = "GET /api/wallet/{address}/analyze"
	GetTransactions         = "GET /api/wallet/{address}/transactions"
	GetBalance              = "GET /api/wallet/{address}/balance"
	GetBalanceAtDate        = "GET /api/wallet/{address}/balance-at-date"
	GetTokenTransfers       = "GET /api/wallet/{address}/tokens"
	GetInternalTransactions = "GET /api/wallet/{address}/internal-transactions"
	GetNFTTransfers         = "GET /api/wallet/{address}/nft-transfers"
	GetEventLogs            = "GET /api/wallet/{address}/events"
	GetTransactionStatus    = "GET /api/transaction/{hash}/status"
	GetLatestBlocks         = "GET /api/latest-blocks"
	GetLatestTransactions   = "GET /api/latest-transactions"
	GetNetworkStats         = "GET /api/network-stats"
	GetEthPriceHistory      = "GET /api/eth-price-history"
	GetNetworkActivity      = "GET /api/network-activity"
)

type ExplorerHandler struct {
	logs     *zap.SugaredLogger
	explorer ExplorerService
}

func NewExplorerHandler(logger *zap.SugaredLogger, explorerService ExplorerService) *ExplorerHandler {
	return &ExplorerHandler{
		logs:     logger,
		explorer: explorerService,
	}
}

func (h *ExplorerHandler) HandleAnalyzeWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address:    r.PathValue("address"),
		StartBlock: r.URL.Query().Get("startBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not analyze wallet",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", AnalyzeWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet analysis request received",
		"address", req.Address,
		"start_block", req.StartBlockNumber(),
		"handler", AnalyzeWallet,
		"request_id", requestId)

	analysis, err := h.explorer.AnalyzeWallet(r.Context(), req.Address, req.StartBlockNumber())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not analyze wallet",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to analyze wallet",
			"error", err,
			"handler", AnalyzeWallet,
			"request_id", requestId)
		return
	}

	h.respond(w, analysis, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address:    r.PathValue("address"),
		StartBlock: r.URL.Query().Get("startBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	result, err := h.explorer.WalletTransactions(r.Context(), req.Address, req.StartBlockNumber())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address: r.PathValue("address"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	balance, err := h.explorer.Balance(r.Context(), req.Address)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get balance",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	h.respond(w, balance, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetBalanceAtDate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.BalanceAtDateRequest{
		Address: r.PathValue("address"),
		Date:    r.URL.Query().Get("date"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve historical balance",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetBalanceAtDate,
			"request_id", requestId)
		return
	}

	balance, err := h.explorer.BalanceAtDate(r.Context(), req.Address, req.Date)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve historical balance",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get balance at date",
			"error", err,
			"handler", GetBalanceAtDate,
			"request_id", requestId)
		return
	}

	h.respond(w, balance, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTokenTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address:    r.PathValue("address"),
		StartBlock: r.URL.Query().Get("startBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve token transfers",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetTokenTransfers,
			"request_id", requestId)
		return
	}

	transfers, err := h.explorer.TokenTransfers(r.Context(), req.Address, req.StartBlockNumber())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve token transfers",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get token transfers",
			"error", err,
			"handler", GetTokenTransfers,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TokenTransferRecord{
		"tokenTransfers": transfers,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetInternalTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address:    r.PathValue("address"),
		StartBlock: r.URL.Query().Get("startBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve internal transactions",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetInternalTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.explorer.InternalTransactions(r.Context(), req.Address, req.StartBlockNumber())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve internal transactions",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get internal transactions",
			"error", err,
			"handler", GetInternalTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.InternalTransactionRecord{
		"internalTransactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetNFTTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.WalletRequest{
		Address:    r.PathValue("address"),
		StartBlock: r.URL.Query().Get("startBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve NFT transfers",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetNFTTransfers,
			"request_id", requestId)
		return
	}

	transfers, err := h.explorer.NFTTransfers(r.Context(), req.Address, req.StartBlockNumber())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve NFT transfers",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get nft transfers",
			"error", err,
			"handler", GetNFTTransfers,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.NFTTransferRecord{
		"nftTransfers": transfers,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetEventLogs(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.BlockRangeRequest{
		Address:   r.PathValue("address"),
		FromBlock: r.URL.Query().Get("fromBlock"),
		ToBlock:   r.URL.Query().Get("toBlock"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve event logs",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetEventLogs,
			"request_id", requestId)
		return
	}

	fromBlock, toBlock := req.Blocks()
	logs, err := h.explorer.EventLogs(r.Context(), req.Address, fromBlock, toBlock)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve event logs",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get event logs",
			"error", err,
			"handler", GetEventLogs,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.EventLogRecord{
		"events": logs,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetTransactionStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.TransactionStatusRequest{
		Hash: r.PathValue("hash"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transaction status",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetTransactionStatus,
			"request_id", requestId)
		return
	}

	status, err := h.explorer.TransactionStatus(r.Context(), req.Hash)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transaction status",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transaction status",
			"error", err,
			"handler", GetTransactionStatus,
			"request_id", requestId)
		return
	}

	h.respond(w, status, http.StatusOK, requestId)
}

// The dashboard endpoints below degrade to an empty payload instead of an
// HTTP error so the UI renders an empty state rather than a broken one.

func (h *ExplorerHandler) HandleGetLatestBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	blocks, err := h.explorer.LatestBlocks(r.Context())
	if err != nil {
		h.logs.Errorw("failed to get latest blocks",
			"error", err,
			"handler", GetLatestBlocks,
			"request_id", requestId)
		blocks = []core.BlockSummary{}
	}

	resp := map[string][]core.BlockSummary{
		"blocks": blocks,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetLatestTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	transactions, err := h.explorer.LatestTransactions(r.Context())
	if err != nil {
		h.logs.Errorw("failed to get latest transactions",
			"error", err,
			"handler", GetLatestTransactions,
			"request_id", requestId)
		transactions = []core.RecentTransaction{}
	}

	resp := map[string][]core.RecentTransaction{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetNetworkStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.explorer.NetworkStats(r.Context())
	if err != nil {
		h.logs.Errorw("failed to get network stats",
			"error", err,
			"handler", GetNetworkStats,
			"request_id", requestId)
		stats = &core.NetworkStats{}
	}

	h.respond(w, stats, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetEthPriceHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.PriceHistoryRequest{
		Days: r.URL.Query().Get("days"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve price history",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetEthPriceHistory,
			"request_id", requestId)
		return
	}

	points, err := h.explorer.EthPriceHistory(r.Context(), req.DaysCount())
	if err != nil {
		h.logs.Errorw("failed to get price history",
			"error", err,
			"handler", GetEthPriceHistory,
			"request_id", requestId)
		points = []core.PricePoint{}
	}

	resp := map[string][]core.PricePoint{
		"prices": points,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetNetworkActivity(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	activity, err := h.explorer.NetworkActivity(r.Context())
	if err != nil {
		h.logs.Errorw("failed to get network activity",
			"error", err,
			"handler", GetNetworkActivity,
			"request_id", requestId)
		activity = []core.BlockActivity{}
	}

	resp := map[string][]core.BlockActivity{
		"activity": activity,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
