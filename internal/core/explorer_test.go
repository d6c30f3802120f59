package core_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/cache"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/core/fake"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
)

var _ = Describe("Explorer", func() {
	const wallet = "0x1111111111111111111111111111111111111111"
	const other = "0x2222222222222222222222222222222222222222"

	var (
		explorer  *core.Explorer
		fakeAPI   *fake.EtherscanAPI
		fakeStore *fake.Store
		hot       *cache.TTL[any]
		ctx       context.Context
		fakeErr   error
	)

	BeforeEach(func() {
		fakeAPI = new(fake.EtherscanAPI)
		fakeStore = new(fake.Store)
		hot = cache.New[any](10 * time.Second)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		explorer = core.NewExplorer(zap.NewNop().Sugar(), fakeAPI, fakeStore, hot)
	})

	Describe("AnalyzeWallet", func() {
		var (
			analysis *core.WalletAnalysis
			err      error
		)

		BeforeEach(func() {
			fakeAPI.TransactionsReturns([]etherscan.Transaction{
				{Hash: "0xAA", BlockNumber: "120", From: other, To: wallet, Value: "2000000000000000000", GasUsed: "21000", TimeStamp: "1700000000", IsError: "0"},
				{Hash: "0xBB", BlockNumber: "100", From: wallet, To: other, Value: "1000000000000000000", GasUsed: "21000", TimeStamp: "1690000000", IsError: "0"},
			}, nil)
			fakeAPI.TokenTransfersReturns([]etherscan.TokenTransfer{
				{Hash: "0xCC", BlockNumber: "110", From: other, To: wallet, ContractAddress: "0xDDDD", Value: "500", TokenSymbol: "TKN", TokenDecimal: "18", TimeStamp: "1695000000"},
			}, nil)
			fakeAPI.InternalTransactionsReturns([]etherscan.InternalTransaction{}, nil)
			fakeAPI.NFTTransfersReturns([]etherscan.TokenTransfer{}, nil)
			fakeAPI.BalanceReturns("5000000000000000000", nil)
		})

		JustBeforeEach(func() {
			analysis, err = explorer.AnalyzeWallet(ctx, "0x1111111111111111111111111111111111111111", 0)
		})

		When("all upstream calls succeed", func() {
			It("should fuse the datasets into one payload", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(analysis.Address).To(Equal(wallet))
				Expect(analysis.Balance).To(Equal("5000000000000000000"))
				Expect(analysis.BalanceEth).To(Equal("5.000000"))
				Expect(analysis.Transactions).To(HaveLen(2))
				Expect(analysis.TokenTransfers).To(HaveLen(1))
				Expect(analysis.Stats.TotalTransactions).To(Equal(2))
				Expect(analysis.Stats.IncomingCount).To(Equal(1))
				Expect(analysis.Stats.OutgoingCount).To(Equal(1))
				Expect(analysis.Stats.FirstBlock).To(Equal(int64(100)))
				Expect(analysis.Stats.LastBlock).To(Equal(int64(120)))
				Expect(analysis.TokenBalances).To(HaveLen(1))
				Expect(analysis.TokenBalances[0].Balance).To(Equal("500"))
			})

			It("should lowercase hashes and addresses in the records", func() {
				Expect(analysis.Transactions[0].Hash).To(Equal("0xaa"))
				Expect(analysis.TokenTransfers[0].ContractAddress).To(Equal("0xdddd"))
			})

			It("should persist the scan", func() {
				Expect(fakeStore.UpsertWalletCallCount()).To(Equal(1))
				_, address, lastBlock := fakeStore.UpsertWalletArgsForCall(0)
				Expect(address).To(Equal(wallet))
				Expect(lastBlock).To(Equal(int64(120)))

				Expect(fakeStore.UpsertTransactionsCallCount()).To(Equal(1))
				Expect(fakeStore.UpsertTokenTransfersCallCount()).To(Equal(1))
				Expect(fakeStore.SaveBalanceSnapshotCallCount()).To(Equal(1))
			})
		})

		When("one upstream dataset fails", func() {
			BeforeEach(func() {
				fakeAPI.InternalTransactionsReturns(nil, fakeErr)
			})

			It("should fail the whole analysis", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(analysis).To(BeNil())
			})

			It("should not persist anything", func() {
				Expect(fakeStore.UpsertWalletCallCount()).To(Equal(0))
			})
		})

		When("persistence fails", func() {
			BeforeEach(func() {
				fakeStore.UpsertWalletReturns(fakeErr)
				fakeStore.UpsertTransactionsReturns(fakeErr)
				fakeStore.SaveBalanceSnapshotReturns(fakeErr)
			})

			It("should still return the analysis", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(analysis).NotTo(BeNil())
			})
		})

		When("the wallet has no activity", func() {
			BeforeEach(func() {
				fakeAPI.TransactionsReturns([]etherscan.Transaction{}, nil)
				fakeAPI.TokenTransfersReturns([]etherscan.TokenTransfer{}, nil)
				fakeAPI.BalanceReturns("0", nil)
			})

			It("should return zeroed stats instead of an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(analysis.Stats.TotalTransactions).To(Equal(0))
				Expect(analysis.Stats.AverageValueWei).To(Equal("0"))
				Expect(analysis.TokenBalances).To(BeEmpty())
			})
		})
	})

	Describe("BalanceAtDate", func() {
		BeforeEach(func() {
			fakeAPI.BlockNumberByTimestampReturns(17000000, nil)
			fakeAPI.BalanceAtBlockReturns("1000000000000000000", nil)
		})

		It("should resolve midnight UTC and read the balance at that block", func() {
			result, err := explorer.BalanceAtDate(ctx, wallet, "2023-04-20")
			Expect(err).NotTo(HaveOccurred())

			_, timestamp := fakeAPI.BlockNumberByTimestampArgsForCall(0)
			expected := time.Date(2023, 4, 20, 0, 0, 0, 0, time.UTC).Unix()
			Expect(timestamp).To(Equal(expected))

			_, address, block := fakeAPI.BalanceAtBlockArgsForCall(0)
			Expect(address).To(Equal(wallet))
			Expect(block).To(Equal(int64(17000000)))

			Expect(result.BlockNumber).To(Equal(int64(17000000)))
			Expect(result.BalanceEth).To(Equal("1.000000"))
			Expect(fakeStore.SaveBalanceSnapshotCallCount()).To(Equal(1))
		})

		It("should reject malformed dates", func() {
			_, err := explorer.BalanceAtDate(ctx, wallet, "20-04-2023")
			Expect(err).To(HaveOccurred())
			Expect(fakeAPI.BlockNumberByTimestampCallCount()).To(Equal(0))
		})
	})

	Describe("TransactionStatus", func() {
		const txHash = "0xdeadbeef"

		When("the transaction succeeded", func() {
			BeforeEach(func() {
				fakeAPI.TransactionStatusReturns(etherscan.TxStatus{IsError: "0"}, nil)
				fakeAPI.TransactionReceiptReturns(&etherscan.Receipt{Status: "0x1", BlockNumber: "0x64", GasUsed: "0x5208"}, nil)
			})

			It("should report success with the receipt", func() {
				result, err := explorer.TransactionStatus(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal("success"))
				Expect(result.Receipt).NotTo(BeNil())
				Expect(result.Receipt.BlockNumber).To(Equal(int64(100)))
			})
		})

		When("the receipt is not available yet", func() {
			BeforeEach(func() {
				fakeAPI.TransactionStatusReturns(etherscan.TxStatus{IsError: "0"}, nil)
				fakeAPI.TransactionReceiptReturns(nil, etherscan.ErrNotFound)
			})

			It("should report pending", func() {
				result, err := explorer.TransactionStatus(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal("pending"))
				Expect(result.Receipt).To(BeNil())
			})
		})

		When("the execution errored", func() {
			BeforeEach(func() {
				fakeAPI.TransactionStatusReturns(etherscan.TxStatus{IsError: "1", ErrDescription: "out of gas"}, nil)
				fakeAPI.TransactionReceiptReturns(&etherscan.Receipt{Status: "0x0"}, nil)
			})

			It("should report failed with the description", func() {
				result, err := explorer.TransactionStatus(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal("failed"))
				Expect(result.ErrDescription).To(Equal("out of gas"))
			})
		})
	})

	Describe("NetworkStats", func() {
		BeforeEach(func() {
			fakeAPI.LatestBlockNumberReturns(18000000, nil)
			fakeAPI.EthPriceReturns(etherscan.EthPrice{EthUSD: "3100.55", EthBTC: "0.05"}, nil)
			fakeAPI.GasOracleReturns(etherscan.GasOracle{SafeGasPrice: "20", ProposeGasPrice: "25", FastGasPrice: "30"}, nil)
		})

		It("should combine block, price and gas data", func() {
			stats, err := explorer.NetworkStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.LatestBlock).To(Equal(int64(18000000)))
			Expect(stats.EthUSD).To(Equal("3100.55"))
			Expect(stats.FastGasPrice).To(Equal("30"))
		})

		It("should serve repeat calls from the cache", func() {
			_, err := explorer.NetworkStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = explorer.NetworkStats(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeAPI.LatestBlockNumberCallCount()).To(Equal(1))
			Expect(fakeAPI.EthPriceCallCount()).To(Equal(1))
			Expect(fakeAPI.GasOracleCallCount()).To(Equal(1))
		})

		When("price and gas are unavailable", func() {
			BeforeEach(func() {
				fakeAPI.EthPriceReturns(etherscan.EthPrice{}, fakeErr)
				fakeAPI.GasOracleReturns(etherscan.GasOracle{}, fakeErr)
			})

			It("should degrade to a block-number-only payload", func() {
				stats, err := explorer.NetworkStats(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.LatestBlock).To(Equal(int64(18000000)))
				Expect(stats.EthUSD).To(BeEmpty())
				Expect(stats.SafeGasPrice).To(BeEmpty())
			})
		})

		When("every section fails", func() {
			BeforeEach(func() {
				fakeAPI.LatestBlockNumberReturns(0, fakeErr)
				fakeAPI.EthPriceReturns(etherscan.EthPrice{}, fakeErr)
				fakeAPI.GasOracleReturns(etherscan.GasOracle{}, fakeErr)
			})

			It("should return an error", func() {
				_, err := explorer.NetworkStats(ctx)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("LatestBlocks", func() {
		BeforeEach(func() {
			fakeAPI.LatestBlockNumberReturns(105, nil)
			fakeAPI.BlockByNumberStub = func(ctx context.Context, number int64, fullTxs bool) (*etherscan.Block, error) {
				if number == 103 {
					return nil, fakeErr
				}
				return &etherscan.Block{
					Number:       "0x" + string(rune('0'+number-100)),
					GasUsed:      "0x5208",
					GasLimit:     "0x1c9c380",
					Transactions: []etherscan.BlockTransaction{{}},
				}, nil
			}
			fakeAPI.BlockRewardReturns(etherscan.BlockReward{BlockReward: "2000000000000000000"}, nil)
		})

		It("should omit blocks that fail to fetch", func() {
			blocks, err := explorer.LatestBlocks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(blocks).To(HaveLen(5))
			Expect(fakeAPI.BlockByNumberCallCount()).To(Equal(6))
		})

		It("should serve repeat calls from the cache", func() {
			_, err := explorer.LatestBlocks(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = explorer.LatestBlocks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeAPI.LatestBlockNumberCallCount()).To(Equal(1))
		})

		When("the head block lookup fails", func() {
			BeforeEach(func() {
				fakeAPI.LatestBlockNumberReturns(0, fakeErr)
			})

			It("should return an error", func() {
				_, err := explorer.LatestBlocks(ctx)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("LatestTransactions", func() {
		BeforeEach(func() {
			fakeAPI.LatestBlockNumberReturns(200, nil)
			fakeAPI.BlockByNumberReturns(&etherscan.Block{
				Number: "0xc8",
				Transactions: []etherscan.BlockTransaction{
					{Hash: "0xAA", From: "0x1", To: "0x2", Value: "0xde0b6b3a7640000", BlockNumber: "0xc8"},
					{Hash: "0xBB", From: "0x3", To: "0x4", Value: "0x0", BlockNumber: "0xc8"},
				},
			}, nil)
		})

		It("should skip zero-value transactions", func() {
			transactions, err := explorer.LatestTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(3)) // one per scanned block
			Expect(transactions[0].Hash).To(Equal("0xaa"))
			Expect(transactions[0].ValueEth).To(Equal("1.000000"))
		})
	})

	Describe("EthPriceHistory", func() {
		BeforeEach(func() {
			fakeAPI.EthPriceReturns(etherscan.EthPrice{EthUSD: "3000"}, nil)
		})

		It("should produce one point per day", func() {
			points, err := explorer.EthPriceHistory(ctx, 30)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(30))
			Expect(points[len(points)-1].Date).To(Equal(time.Now().UTC().Format("2006-01-02")))
		})

		It("should be deterministic across calls", func() {
			first, err := explorer.EthPriceHistory(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			second, err := explorer.EthPriceHistory(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(second))
		})

		When("the price feed is down", func() {
			BeforeEach(func() {
				fakeAPI.EthPriceReturns(etherscan.EthPrice{}, fakeErr)
			})

			It("should fall back to the default anchor", func() {
				points, err := explorer.EthPriceHistory(ctx, 7)
				Expect(err).NotTo(HaveOccurred())
				Expect(points).To(HaveLen(7))
			})
		})
	})

	Describe("NetworkActivity", func() {
		BeforeEach(func() {
			fakeAPI.LatestBlockNumberReturns(300, nil)
			fakeAPI.BlockByNumberReturns(&etherscan.Block{
				Number:       "0x12c",
				GasUsed:      "0xe4e1c0",
				GasLimit:     "0x1c9c380",
				Transactions: make([]etherscan.BlockTransaction, 4),
			}, nil)
		})

		It("should report throughput for the newest blocks", func() {
			activity, err := explorer.NetworkActivity(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(activity).To(HaveLen(10))
			Expect(activity[0].TransactionCount).To(Equal(4))
			Expect(activity[0].Utilization).To(Equal("50.00"))
		})
	})
})
