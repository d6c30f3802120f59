package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository"
)

var _ = Describe("MemoryStore", func() {
	var (
		store *repository.MemoryStore
		ctx   context.Context
	)

	BeforeEach(func() {
		store = repository.NewMemoryStore()
		ctx = context.Background()
	})

	Describe("UpsertWallet", func() {
		It("should advance the block cursor in place", func() {
			Expect(store.UpsertWallet(ctx, "0xABC", 100)).To(Succeed())
			Expect(store.UpsertWallet(ctx, "0xabc", 250)).To(Succeed())

			wallet, err := store.GetWallet(ctx, "0xAbC")
			Expect(err).NotTo(HaveOccurred())
			Expect(wallet.Address).To(Equal("0xabc"))
			Expect(wallet.LastScannedBlock).To(Equal(int64(250)))
		})

		It("should report missing wallets", func() {
			_, err := store.GetWallet(ctx, "0xmissing")
			Expect(err).To(MatchError(repository.ErrWalletNotFound))
		})
	})

	Describe("UpsertTransactions", func() {
		It("should ignore duplicates by hash", func() {
			to := "0xDEF"
			batch := []repository.Transaction{
				{Hash: "0xAA", FromAddress: "0xABC", ToAddress: &to, Value: "100"},
				{Hash: "0xBB", FromAddress: "0xABC", Value: "200"},
			}
			Expect(store.UpsertTransactions(ctx, batch)).To(Succeed())
			Expect(store.UpsertTransactions(ctx, batch)).To(Succeed())

			transactions, err := store.TransactionsByAddress(ctx, "0xABC")
			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(2))
		})

		It("should fold addresses to lowercase for lookups", func() {
			to := "0xDeF"
			Expect(store.UpsertTransactions(ctx, []repository.Transaction{
				{Hash: "0xAA", FromAddress: "0x123", ToAddress: &to},
			})).To(Succeed())

			transactions, err := store.TransactionsByAddress(ctx, "0xDEF")
			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(1))
		})
	})

	Describe("UpsertTokenTransfers", func() {
		It("should deduplicate by hash and contract", func() {
			batch := []repository.TokenTransfer{
				{TransactionHash: "0xAA", ContractAddress: "0x01", FromAddress: "0xABC", ToAddress: "0xDEF"},
				{TransactionHash: "0xAA", ContractAddress: "0x02", FromAddress: "0xABC", ToAddress: "0xDEF"},
			}
			Expect(store.UpsertTokenTransfers(ctx, batch)).To(Succeed())
			Expect(store.UpsertTokenTransfers(ctx, batch)).To(Succeed())

			transfers, err := store.TokenTransfersByAddress(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(2))
		})
	})

	Describe("SaveBalanceSnapshot", func() {
		It("should append without deduplication", func() {
			snapshot := repository.BalanceHistory{WalletAddress: "0xABC", BlockNumber: 10, Balance: "100"}
			Expect(store.SaveBalanceSnapshot(ctx, snapshot)).To(Succeed())
			Expect(store.SaveBalanceSnapshot(ctx, snapshot)).To(Succeed())

			history, err := store.BalanceHistoryByAddress(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
		})
	})

	Describe("users", func() {
		It("should round-trip a created user", func() {
			created, err := store.CreateUser(ctx, "alice", "s3cret")
			Expect(err).NotTo(HaveOccurred())

			found, err := store.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))
		})

		It("should reject duplicate usernames", func() {
			_, err := store.CreateUser(ctx, "alice", "s3cret")
			Expect(err).NotTo(HaveOccurred())
			_, err = store.CreateUser(ctx, "alice", "other")
			Expect(err).To(HaveOccurred())
		})

		It("should report missing users", func() {
			_, err := store.GetUserByUsername(ctx, "nobody")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})
})
