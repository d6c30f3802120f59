package core_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/core"
)

var _ = Describe("Stats", func() {
	const wallet = "0x1111111111111111111111111111111111111111"
	const other = "0x2222222222222222222222222222222222222222"

	Describe("ComputeTransactionStats", func() {
		When("the transaction set is empty", func() {
			It("should zero every field with string averages of 0", func() {
				stats := core.ComputeTransactionStats(nil, wallet, 500)

				Expect(stats.TotalTransactions).To(Equal(0))
				Expect(stats.IncomingCount).To(Equal(0))
				Expect(stats.OutgoingCount).To(Equal(0))
				Expect(stats.TotalReceivedWei).To(Equal("0"))
				Expect(stats.TotalSentWei).To(Equal("0"))
				Expect(stats.TotalVolumeWei).To(Equal("0"))
				Expect(stats.AverageGasUsed).To(Equal("0"))
				Expect(stats.AverageValueWei).To(Equal("0"))
				Expect(stats.AverageValueEth).To(Equal("0"))
				Expect(stats.FirstBlock).To(Equal(int64(500)))
				Expect(stats.LastBlock).To(Equal(int64(500)))
				Expect(stats.TopFunctions).To(BeEmpty())
			})
		})

		When("transactions flow both ways", func() {
			var stats core.TransactionStats

			BeforeEach(func() {
				txs := []core.TransactionRecord{
					{From: other, To: wallet, Value: "3000000000000000000", BlockNumber: 120, GasUsed: 21000},
					{From: wallet, To: other, Value: "1000000000000000000", BlockNumber: 100, GasUsed: 52000},
					{From: other, To: wallet, Value: "500000000000000000", BlockNumber: 140, GasUsed: 21000},
				}
				stats = core.ComputeTransactionStats(txs, wallet, 0)
			})

			It("should count direction by address match", func() {
				Expect(stats.TotalTransactions).To(Equal(3))
				Expect(stats.IncomingCount).To(Equal(2))
				Expect(stats.OutgoingCount).To(Equal(1))
			})

			It("should keep received+sent equal to volume in Wei", func() {
				received, ok := new(big.Int).SetString(stats.TotalReceivedWei, 10)
				Expect(ok).To(BeTrue())
				sent, ok := new(big.Int).SetString(stats.TotalSentWei, 10)
				Expect(ok).To(BeTrue())
				volume, ok := new(big.Int).SetString(stats.TotalVolumeWei, 10)
				Expect(ok).To(BeTrue())

				Expect(new(big.Int).Add(received, sent)).To(Equal(volume))
				Expect(stats.TotalReceivedWei).To(Equal("3500000000000000000"))
				Expect(stats.TotalSentWei).To(Equal("1000000000000000000"))
			})

			It("should track the first and last activity block", func() {
				Expect(stats.FirstBlock).To(Equal(int64(100)))
				Expect(stats.LastBlock).To(Equal(int64(140)))
			})

			It("should render Eth twins with fixed precision", func() {
				Expect(stats.TotalReceivedEth).To(Equal("3.500000"))
				Expect(stats.TotalSentEth).To(Equal("1.000000"))
				Expect(stats.TotalVolumeEth).To(Equal("4.500000"))
			})
		})

		When("addresses differ only by case", func() {
			It("should still attribute direction", func() {
				txs := []core.TransactionRecord{
					{From: other, To: "0x1111111111111111111111111111111111111111", Value: "100"},
				}
				stats := core.ComputeTransactionStats(txs, "0x1111111111111111111111111111111111111111", 0)
				Expect(stats.IncomingCount).To(Equal(1))
			})
		})

		When("a transaction is a self-transfer", func() {
			It("should count it in both directions", func() {
				txs := []core.TransactionRecord{
					{From: wallet, To: wallet, Value: "100"},
				}
				stats := core.ComputeTransactionStats(txs, wallet, 0)
				Expect(stats.IncomingCount).To(Equal(1))
				Expect(stats.OutgoingCount).To(Equal(1))
				Expect(stats.TotalVolumeWei).To(Equal("200"))
			})
		})
	})

	Describe("TopFunctions", func() {
		It("should default unnamed entries to Transfer and strip signatures", func() {
			txs := []core.TransactionRecord{
				{FunctionName: ""},
				{FunctionName: "approve(address _spender, uint256 _value)"},
				{FunctionName: "approve(address _spender, uint256 _value)"},
				{FunctionName: ""},
				{FunctionName: ""},
			}
			usage := core.TopFunctions(txs, 3)
			Expect(usage).To(HaveLen(2))
			Expect(usage[0].Name).To(Equal("Transfer"))
			Expect(usage[0].Count).To(Equal(3))
			Expect(usage[1].Name).To(Equal("approve"))
			Expect(usage[1].Count).To(Equal(2))
		})

		It("should keep first-encountered order on ties", func() {
			txs := []core.TransactionRecord{
				{FunctionName: "swap(uint256)"},
				{FunctionName: "mint(address)"},
				{FunctionName: "swap(uint256)"},
				{FunctionName: "mint(address)"},
			}
			usage := core.TopFunctions(txs, 3)
			Expect(usage[0].Name).To(Equal("swap"))
			Expect(usage[1].Name).To(Equal("mint"))
		})

		It("should cap the list at the limit", func() {
			txs := []core.TransactionRecord{
				{FunctionName: "a()"},
				{FunctionName: "b()"},
				{FunctionName: "c()"},
				{FunctionName: "d()"},
			}
			Expect(core.TopFunctions(txs, 3)).To(HaveLen(3))
		})
	})

	Describe("ComputeTokenLedger", func() {
		const tokenA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		const tokenB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

		It("should net incoming against outgoing per contract", func() {
			transfers := []core.TokenTransferRecord{
				{ContractAddress: tokenA, From: other, To: wallet, Value: "500", TokenSymbol: "AAA"},
				{ContractAddress: tokenA, From: wallet, To: other, Value: "200"},
				{ContractAddress: tokenB, From: other, To: wallet, Value: "50", TokenSymbol: "BBB"},
			}
			ledger := core.ComputeTokenLedger(transfers, wallet)

			Expect(ledger).To(HaveLen(2))
			Expect(ledger[0].ContractAddress).To(Equal(tokenA))
			Expect(ledger[0].Balance).To(Equal("300"))
			Expect(ledger[0].IncomingTransfers).To(Equal(1))
			Expect(ledger[0].OutgoingTransfers).To(Equal(1))
			Expect(ledger[1].Balance).To(Equal("50"))
		})

		It("should allow a negative balance when the window misses acquisitions", func() {
			transfers := []core.TokenTransferRecord{
				{ContractAddress: tokenA, From: wallet, To: other, Value: "700"},
			}
			ledger := core.ComputeTokenLedger(transfers, wallet)
			Expect(ledger[0].Balance).To(Equal("-700"))
		})
	})

	Describe("WeiToEth", func() {
		It("should shift 18 decimal places with 6 digit display", func() {
			wei, _ := new(big.Int).SetString("1234567890000000000", 10)
			Expect(core.WeiToEth(wei)).To(Equal("1.234568"))
		})

		It("should read malformed strings as zero", func() {
			Expect(core.WeiStringToEth("not-a-number")).To(Equal("0.000000"))
		})
	})
})
