package repository_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/petar-nikolic125/ether-lens-sub000/internal/db"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository"
	"github.com/petar-nikolic125/ether-lens-sub000/internal/repository/fake"
)

var _ = Describe("ExplorerRepository", func() {
	var (
		repo        *repository.ExplorerRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewExplorerRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate every explorer table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Wallet{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.TokenTransfer{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.BalanceHistory{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should wrap and return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		When("the save succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should store a bcrypt hash, not the password", func() {
				user, err := repo.CreateUser(ctx, "alice", "s3cret")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).NotTo(BeEmpty())
				Expect(user.PasswordHash).NotTo(ContainSubstring("s3cret"))

				compareErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret"))
				Expect(compareErr).NotTo(HaveOccurred())
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should translate to ErrUserNotFound", func() {
				_, err := repo.GetUserByUsername(ctx, "nobody")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("UpsertWallet", func() {
		BeforeEach(func() {
			fakeStorage.UpsertUpdatingReturns(nil)
		})

		It("should lowercase the address and update the block cursor", func() {
			err := repo.UpsertWallet(ctx, "0xABCDEF", 1500)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.UpsertUpdatingCallCount()).To(Equal(1))
			_, record, conflictColumns, updateColumns := fakeStorage.UpsertUpdatingArgsForCall(0)
			wallet, ok := record.(*repository.Wallet)
			Expect(ok).To(BeTrue())
			Expect(wallet.Address).To(Equal("0xabcdef"))
			Expect(wallet.LastScannedBlock).To(Equal(int64(1500)))
			Expect(conflictColumns).To(Equal([]string{"address"}))
			Expect(updateColumns).To(Equal([]string{"last_scanned_block"}))
		})
	})

	Describe("UpsertTransactions", func() {
		BeforeEach(func() {
			fakeStorage.UpsertToTableReturns(nil)
		})

		It("should conflict on the transaction hash", func() {
			to := "0xDEF"
			err := repo.UpsertTransactions(ctx, []repository.Transaction{
				{Hash: "0xAA", FromAddress: "0xABC", ToAddress: &to},
			})
			Expect(err).NotTo(HaveOccurred())

			_, records, conflictColumns := fakeStorage.UpsertToTableArgsForCall(0)
			transactions, ok := records.(*[]repository.Transaction)
			Expect(ok).To(BeTrue())
			Expect((*transactions)[0].Hash).To(Equal("0xaa"))
			Expect((*transactions)[0].FromAddress).To(Equal("0xabc"))
			Expect(*(*transactions)[0].ToAddress).To(Equal("0xdef"))
			Expect(conflictColumns).To(Equal([]string{"hash"}))
		})

		It("should skip the round trip for an empty batch", func() {
			Expect(repo.UpsertTransactions(ctx, nil)).To(Succeed())
			Expect(fakeStorage.UpsertToTableCallCount()).To(Equal(0))
		})
	})

	Describe("UpsertTokenTransfers", func() {
		BeforeEach(func() {
			fakeStorage.UpsertToTableReturns(nil)
		})

		It("should conflict on hash and contract", func() {
			err := repo.UpsertTokenTransfers(ctx, []repository.TokenTransfer{
				{TransactionHash: "0xAA", ContractAddress: "0xBB", FromAddress: "0xCC", ToAddress: "0xDD"},
			})
			Expect(err).NotTo(HaveOccurred())

			_, _, conflictColumns := fakeStorage.UpsertToTableArgsForCall(0)
			Expect(conflictColumns).To(Equal([]string{"transaction_hash", "contract_address"}))
		})
	})

	Describe("TransactionsByAddress", func() {
		BeforeEach(func() {
			fakeStorage.GetAllWhereReturns(nil)
		})

		It("should match the address on both sides", func() {
			_, err := repo.TransactionsByAddress(ctx, "0xABC")
			Expect(err).NotTo(HaveOccurred())

			_, query, _, args := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(query).To(Equal("from_address = ? OR to_address = ?"))
			Expect(args).To(Equal([]any{"0xabc", "0xabc"}))
		})
	})

	Describe("SaveBalanceSnapshot", func() {
		BeforeEach(func() {
			fakeStorage.SaveToTableReturns(nil)
		})

		It("should lowercase the wallet address", func() {
			err := repo.SaveBalanceSnapshot(ctx, repository.BalanceHistory{
				WalletAddress: "0xABC",
				BlockNumber:   100,
				Balance:       "1000",
			})
			Expect(err).NotTo(HaveOccurred())

			_, records := fakeStorage.SaveToTableArgsForCall(0)
			snapshots, ok := records.(*[]repository.BalanceHistory)
			Expect(ok).To(BeTrue())
			Expect((*snapshots)[0].WalletAddress).To(Equal("0xabc"))
		})
	})
})
