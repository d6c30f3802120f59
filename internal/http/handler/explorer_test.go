package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/handler"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/handler/fake"
)

var _ = Describe("ExplorerHandler", func() {
	const wallet = "0x1111111111111111111111111111111111111111"
	const txHash = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd"

	var (
		eh          *handler.ExplorerHandler
		fakeService *fake.ExplorerService
		w           *httptest.ResponseRecorder
		req         *http.Request
		fakeErr     error
	)

	BeforeEach(func() {
		fakeService = new(fake.ExplorerService)
		fakeErr = errors.New("fake error")
		w = httptest.NewRecorder()
		eh = handler.NewExplorerHandler(zap.NewNop().Sugar(), fakeService)
	})

	Describe("HandleAnalyzeWallet", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/analyze?startBlock=100", nil)
			req.SetPathValue("address", wallet)
		})

		JustBeforeEach(func() {
			eh.HandleAnalyzeWallet(w, req)
		})

		When("the analysis succeeds", func() {
			BeforeEach(func() {
				fakeService.AnalyzeWalletReturns(&core.WalletAnalysis{
					Address: wallet,
					Balance: "1000",
				}, nil)
			})

			It("should return the analysis payload", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var analysis core.WalletAnalysis
				Expect(json.NewDecoder(w.Body).Decode(&analysis)).To(Succeed())
				Expect(analysis.Address).To(Equal(wallet))

				Expect(fakeService.AnalyzeWalletCallCount()).To(Equal(1))
				_, address, startBlock := fakeService.AnalyzeWalletArgsForCall(0)
				Expect(address).To(Equal(wallet))
				Expect(startBlock).To(Equal(int64(100)))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				req.SetPathValue("address", "not-an-address")
			})

			It("should return status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AnalyzeWalletCallCount()).To(Equal(0))
			})
		})

		When("the start block is not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/analyze?startBlock=abc", nil)
				req.SetPathValue("address", wallet)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AnalyzeWalletCallCount()).To(Equal(0))
			})
		})

		When("the analysis fails", func() {
			BeforeEach(func() {
				fakeService.AnalyzeWalletReturns(nil, fakeErr)
			})

			It("should return status 500 with a safe message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetBalanceAtDate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/balance-at-date?date=2023-04-20", nil)
			req.SetPathValue("address", wallet)
		})

		JustBeforeEach(func() {
			eh.HandleGetBalanceAtDate(w, req)
		})

		When("the date is valid", func() {
			BeforeEach(func() {
				fakeService.BalanceAtDateReturns(&core.BalanceAtDateResult{
					Address:     wallet,
					Date:        "2023-04-20",
					BlockNumber: 17000000,
				}, nil)
			})

			It("should pass the date through", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, date := fakeService.BalanceAtDateArgsForCall(0)
				Expect(date).To(Equal("2023-04-20"))
			})
		})

		When("the date is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/balance-at-date?date=20-04-2023", nil)
				req.SetPathValue("address", wallet)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.BalanceAtDateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetTransactionStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/transaction/"+txHash+"/status", nil)
			req.SetPathValue("hash", txHash)
		})

		JustBeforeEach(func() {
			eh.HandleGetTransactionStatus(w, req)
		})

		When("the lookup succeeds", func() {
			BeforeEach(func() {
				fakeService.TransactionStatusReturns(&core.TransactionStatusResult{
					Hash:   txHash,
					Status: "success",
				}, nil)
			})

			It("should return the status payload", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var result core.TransactionStatusResult
				Expect(json.NewDecoder(w.Body).Decode(&result)).To(Succeed())
				Expect(result.Status).To(Equal("success"))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				req.SetPathValue("hash", "0x123")
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionStatusCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetEventLogs", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/events?fromBlock=100&toBlock=200", nil)
			req.SetPathValue("address", wallet)
			fakeService.EventLogsReturns([]core.EventLogRecord{}, nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetEventLogs(w, req)
		})

		It("should pass the block range through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, fromBlock, toBlock := fakeService.EventLogsArgsForCall(0)
			Expect(fromBlock).To(Equal(int64(100)))
			Expect(toBlock).To(Equal(int64(200)))
		})

		When("the range is inverted", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/wallet/"+wallet+"/events?fromBlock=200&toBlock=100", nil)
				req.SetPathValue("address", wallet)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.EventLogsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetLatestBlocks", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/latest-blocks", nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetLatestBlocks(w, req)
		})

		When("the service succeeds", func() {
			BeforeEach(func() {
				fakeService.LatestBlocksReturns([]core.BlockSummary{{Number: 100}}, nil)
			})

			It("should return the blocks", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]core.BlockSummary
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["blocks"]).To(HaveLen(1))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.LatestBlocksReturns(nil, fakeErr)
			})

			It("should degrade to an empty list with status 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]core.BlockSummary
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["blocks"]).To(BeEmpty())
			})
		})
	})

	Describe("HandleGetNetworkStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/network-stats", nil)
		})

		JustBeforeEach(func() {
			eh.HandleGetNetworkStats(w, req)
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.NetworkStatsReturns(nil, fakeErr)
			})

			It("should degrade to an empty payload with status 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var stats core.NetworkStats
				Expect(json.NewDecoder(w.Body).Decode(&stats)).To(Succeed())
				Expect(stats.LatestBlock).To(Equal(int64(0)))
			})
		})
	})

	Describe("HandleGetEthPriceHistory", func() {
		JustBeforeEach(func() {
			eh.HandleGetEthPriceHistory(w, req)
		})

		When("days is absent", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/eth-price-history", nil)
				fakeService.EthPriceHistoryReturns([]core.PricePoint{}, nil)
			})

			It("should default to 30 days", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, days := fakeService.EthPriceHistoryArgsForCall(0)
				Expect(days).To(Equal(30))
			})
		})

		When("days is out of range", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/eth-price-history?days=9000", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.EthPriceHistoryCallCount()).To(Equal(0))
			})
		})
	})
})
