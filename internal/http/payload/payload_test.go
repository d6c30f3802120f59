package payload_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/http/payload"
)

var _ = Describe("Payload", func() {
	const wallet = "0x1111111111111111111111111111111111111111"

	Describe("WalletRequest", func() {
		It("should accept a checksummed address", func() {
			req := payload.WalletRequest{Address: "0xAbC1111111111111111111111111111111111111"}
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject a short address", func() {
			req := payload.WalletRequest{Address: "0x123"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject a missing address", func() {
			req := payload.WalletRequest{}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject a non-numeric start block", func() {
			req := payload.WalletRequest{Address: wallet, StartBlock: "abc"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should default an absent start block to zero", func() {
			req := payload.WalletRequest{Address: wallet}
			Expect(req.Validate()).To(Succeed())
			Expect(req.StartBlockNumber()).To(Equal(int64(0)))
		})

		It("should parse a numeric start block", func() {
			req := payload.WalletRequest{Address: wallet, StartBlock: "12345"}
			Expect(req.Validate()).To(Succeed())
			Expect(req.StartBlockNumber()).To(Equal(int64(12345)))
		})
	})

	Describe("BlockRangeRequest", func() {
		It("should accept an ordered range", func() {
			req := payload.BlockRangeRequest{Address: wallet, FromBlock: "100", ToBlock: "200"}
			Expect(req.Validate()).To(Succeed())

			from, to := req.Blocks()
			Expect(from).To(Equal(int64(100)))
			Expect(to).To(Equal(int64(200)))
		})

		It("should reject an inverted range", func() {
			req := payload.BlockRangeRequest{Address: wallet, FromBlock: "200", ToBlock: "100"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should treat an absent toBlock as latest", func() {
			req := payload.BlockRangeRequest{Address: wallet, FromBlock: "100"}
			Expect(req.Validate()).To(Succeed())

			_, to := req.Blocks()
			Expect(to).To(Equal(int64(99999999)))
		})
	})

	Describe("BalanceAtDateRequest", func() {
		It("should accept an ISO date", func() {
			req := payload.BalanceAtDateRequest{Address: wallet, Date: "2023-04-20"}
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject other date layouts", func() {
			req := payload.BalanceAtDateRequest{Address: wallet, Date: "20/04/2023"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject a missing date", func() {
			req := payload.BalanceAtDateRequest{Address: wallet}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("TransactionStatusRequest", func() {
		It("should accept a 32-byte hash", func() {
			req := payload.TransactionStatusRequest{
				Hash: "0xabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcdefabcd",
			}
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject an address-length value", func() {
			req := payload.TransactionStatusRequest{Hash: wallet}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	Describe("PriceHistoryRequest", func() {
		It("should default to 30 days", func() {
			req := payload.PriceHistoryRequest{}
			Expect(req.Validate()).To(Succeed())
			Expect(req.DaysCount()).To(Equal(30))
		})

		It("should accept the upper bound", func() {
			req := payload.PriceHistoryRequest{Days: "365"}
			Expect(req.Validate()).To(Succeed())
			Expect(req.DaysCount()).To(Equal(365))
		})

		It("should reject values above the upper bound", func() {
			req := payload.PriceHistoryRequest{Days: "366"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject zero", func() {
			req := payload.PriceHistoryRequest{Days: "0"}
			Expect(req.Validate()).NotTo(Succeed())
		})

		It("should reject non-numeric values", func() {
			req := payload.PriceHistoryRequest{Days: "week"}
			Expect(req.Validate()).NotTo(Succeed())
		})
	})
})
