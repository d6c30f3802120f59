package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/cache"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/config"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/db"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/handler"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/handler/middleware"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/server"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository"
	"github.com/petar-nikolic125/ether-lens-sub000/pkg/log"
)

const (
	hotCacheTTL     = 10 * time.Second
	upstreamTimeout = 30 * time.Second
)

func Start() error {
	logger := log.NewZapLogger("ether-lens", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// store: postgres when configured, in-memory otherwise
	var store core.Store
	if config.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}

		repo := repository.NewExplorerRepository(dbConn)
		if err := repo.MigrateTables(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		store = repo
	} else {
		logger.Infow("no database configured, using in-memory store")
		store = repository.NewMemoryStore()
	}

	// upstream client
	apiClient := etherscan.NewClient(
		logger,
		&http.Client{Timeout: upstreamTimeout},
		config.EtherscanAPIURL,
		config.EtherscanAPIKey)

	// explorer service
	explorer := core.NewExplorer(
		logger,
		apiClient,
		store,
		cache.New[any](hotCacheTTL))

	// handler
	explorerHlr := handler.NewExplorerHandler(logger, explorer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.AnalyzeWallet, explorerHlr.HandleAnalyzeWallet)
	mux.HandleFunc(handler.GetTransactions, explorerHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetBalance, explorerHlr.HandleGetBalance)
	mux.HandleFunc(handler.GetBalanceAtDate, explorerHlr.HandleGetBalanceAtDate)
	mux.HandleFunc(handler.GetTokenTransfers, explorerHlr.HandleGetTokenTransfers)
	mux.HandleFunc(handler.GetInternalTransactions, explorerHlr.HandleGetInternalTransactions)
	mux.HandleFunc(handler.GetNFTTransfers, explorerHlr.HandleGetNFTTransfers)
	mux.HandleFunc(handler.GetEventLogs, explorerHlr.HandleGetEventLogs)
	mux.HandleFunc(handler.GetTransactionStatus, explorerHlr.HandleGetTransactionStatus)
	mux.HandleFunc(handler.GetLatestBlocks, explorerHlr.HandleGetLatestBlocks)
	mux.HandleFunc(handler.GetLatestTransactions, explorerHlr.HandleGetLatestTransactions)
	mux.HandleFunc(handler.GetNetworkStats, explorerHlr.HandleGetNetworkStats)
	mux.HandleFunc(handler.GetEthPriceHistory, explorerHlr.HandleGetEthPriceHistory)
	mux.HandleFunc(handler.GetNetworkActivity, explorerHlr.HandleGetNetworkActivity)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
