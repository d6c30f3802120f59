package etherscan_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/etherscan"
)

var _ = Describe("Client", func() {
	var (
		client   *etherscan.Client
		server   *httptest.Server
		handler  http.HandlerFunc
		requests atomic.Int32
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		requests.Store(0)
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			handler(w, r)
		}))

		client = etherscan.NewClient(
			zap.NewNop().Sugar(),
			server.Client(),
			server.URL,
			"test-key")
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Transactions", func() {
		When("the upstream replies with data", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					Expect(r.URL.Query().Get("module")).To(Equal("account"))
					Expect(r.URL.Query().Get("action")).To(Equal("txlist"))
					Expect(r.URL.Query().Get("address")).To(Equal("0xabc"))
					Expect(r.URL.Query().Get("startblock")).To(Equal("100"))
					Expect(r.URL.Query().Get("endblock")).To(Equal("99999999"))
					Expect(r.URL.Query().Get("sort")).To(Equal("desc"))
					Expect(r.URL.Query().Get("apikey")).To(Equal("test-key"))

					w.Write([]byte(`{
						"status": "1",
						"message": "OK",
						"result": [
							{"hash": "0xAA", "blockNumber": "120", "from": "0xABC", "to": "0xDEF", "value": "1000", "isError": "0"},
							{"hash": "0xBB", "blockNumber": "110", "from": "0xDEF", "to": "0xABC", "value": "2000", "isError": "0"}
						]
					}`))
				}
			})

			It("should return the decoded transactions", func() {
				txs, err := client.Transactions(ctx, "0xabc", 100, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(HaveLen(2))
				Expect(txs[0].Hash).To(Equal("0xAA"))
				Expect(txs[1].Value).To(Equal("2000"))
			})
		})

		When("the upstream reports no transactions", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"status": "0", "message": "No transactions found", "result": []}`))
				}
			})

			It("should return an empty list, not an error", func() {
				txs, err := client.Transactions(ctx, "0xabc", 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(BeEmpty())
			})
		})

		When("the upstream reports an error", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"status": "0", "message": "NOTOK", "result": "Invalid API Key"}`))
				}
			})

			It("should return an upstream error with the detail", func() {
				_, err := client.Transactions(ctx, "0xabc", 0, 0)
				Expect(err).To(MatchError(etherscan.ErrUpstream))
				Expect(err.Error()).To(ContainSubstring("Invalid API Key"))
			})
		})

		When("the upstream rate limits the first attempt", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					if requests.Load() == 1 {
						w.WriteHeader(http.StatusTooManyRequests)
						return
					}
					w.Write([]byte(`{"status": "1", "message": "OK", "result": [{"hash": "0xAA"}]}`))
				}
			})

			It("should retry and succeed", func() {
				txs, err := client.Transactions(ctx, "0xabc", 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(HaveLen(1))
				Expect(requests.Load()).To(Equal(int32(2)))
			})
		})

		When("the rate limit never clears", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"status": "0", "message": "NOTOK", "result": "Max rate limit reached"}`))
				}
			})

			It("should give up after the retry budget", func() {
				_, err := client.Transactions(ctx, "0xabc", 0, 0)
				Expect(err).To(HaveOccurred())
				Expect(requests.Load()).To(Equal(int32(3)))
			})
		})
	})

	Describe("Balance", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("action")).To(Equal("balance"))
				Expect(r.URL.Query().Get("tag")).To(Equal("latest"))
				w.Write([]byte(`{"status": "1", "message": "OK", "result": "1000000000000000000"}`))
			}
		})

		It("should return the balance as a decimal Wei string", func() {
			balance, err := client.Balance(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("1000000000000000000"))
		})
	})

	Describe("BalanceAtBlock", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("action")).To(Equal("eth_getBalance"))
				Expect(r.URL.Query().Get("tag")).To(Equal("0xf4240"))
				w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": "0xde0b6b3a7640000"}`))
			}
		})

		It("should decode the hex balance to decimal Wei", func() {
			balance, err := client.BalanceAtBlock(ctx, "0xabc", 1000000)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("1000000000000000000"))
		})
	})

	Describe("BlockNumberByTimestamp", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("action")).To(Equal("getblocknobytime"))
				Expect(r.URL.Query().Get("closest")).To(Equal("before"))
				w.Write([]byte(`{"status": "1", "message": "OK", "result": "17000000"}`))
			}
		})

		It("should return the resolved block number", func() {
			block, err := client.BlockNumberByTimestamp(ctx, 1682000000)
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(Equal(int64(17000000)))
		})
	})

	Describe("TransactionReceipt", func() {
		When("the transaction is mined", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": {"status": "0x1", "blockNumber": "0x64", "gasUsed": "0x5208"}}`))
				}
			})

			It("should return the receipt", func() {
				receipt, err := client.TransactionReceipt(ctx, "0xaa")
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal("0x1"))
				Expect(receipt.BlockNumber).To(Equal("0x64"))
			})
		})

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": null}`))
				}
			})

			It("should return ErrNotFound", func() {
				_, err := client.TransactionReceipt(ctx, "0xaa")
				Expect(err).To(MatchError(etherscan.ErrNotFound))
			})
		})
	})

	Describe("LatestBlockNumber", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("action")).To(Equal("eth_blockNumber"))
				w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": "0x10d4f"}`))
			}
		})

		It("should decode the hex block number", func() {
			number, err := client.LatestBlockNumber(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(number).To(Equal(int64(68943)))
		})
	})

	Describe("BlockByNumber", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("action")).To(Equal("eth_getBlockByNumber"))
				Expect(r.URL.Query().Get("boolean")).To(Equal("true"))
				w.Write([]byte(`{"jsonrpc": "2.0", "id": 1, "result": {
					"number": "0x64",
					"hash": "0xBLOCK",
					"miner": "0xMINER",
					"timestamp": "0x5f5e100",
					"gasUsed": "0x5208",
					"gasLimit": "0x1c9c380",
					"transactions": [{"hash": "0xAA", "from": "0x1", "to": "0x2", "value": "0xde0b6b3a7640000", "blockNumber": "0x64"}]
				}}`))
			}
		})

		It("should return the block with full transactions", func() {
			block, err := client.BlockByNumber(ctx, 100, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Number).To(Equal("0x64"))
			Expect(block.Transactions).To(HaveLen(1))
			Expect(block.Transactions[0].Value).To(Equal("0xde0b6b3a7640000"))
		})
	})

	Describe("EthPrice", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "1", "message": "OK", "result": {"ethbtc": "0.05", "ethusd": "3100.55"}}`))
			}
		})

		It("should return the price pair", func() {
			price, err := client.EthPrice(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(price.EthUSD).To(Equal("3100.55"))
			Expect(price.EthBTC).To(Equal("0.05"))
		})
	})
})
