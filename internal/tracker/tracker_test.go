package tracker_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/tracker"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const threshold = 12

func validInput(hash string) model.RegisterTransactionInput {
	return model.RegisterTransactionInput{
		Hash:     hash,
		From:     "0x1111111111111111111111111111111111111111",
		To:       "0x2222222222222222222222222222222222222222",
		Amount:   "1.204819",
		Currency: "usdt",
		GasUsed:  "21000",
		GasPrice: "20000000000",
	}
}

func newTracker(threshold int) tracker.ITracker {
	svc, err := tracker.New(tracker.NewMemoryStore(), threshold, logger.NewNop(), nil)
	Expect(err).NotTo(HaveOccurred())
	return svc
}

var _ = Describe("Tracker", func() {
	var (
		ctx context.Context
		svc tracker.ITracker
	)

	BeforeEach(func() {
		ctx = context.Background()
		svc = newTracker(threshold)
	})

	Describe("New", func() {
		DescribeTable("rejects thresholds outside the confirmation range",
			func(threshold int) {
				_, err := tracker.New(tracker.NewMemoryStore(), threshold, logger.NewNop(), nil)
				Expect(err).To(HaveOccurred())
			},
			Entry("zero", 0),
			Entry("negative", -1),
			Entry("above the cap", 20),
		)

		It("accepts the cap itself", func() {
			_, err := tracker.New(tracker.NewMemoryStore(), 12, logger.NewNop(), nil)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Register", func() {
		It("starts pending with zero confirmations", func() {
			record, err := svc.Register(ctx, validInput("0xabc"))

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusPending))
			Expect(record.Confirmations).To(BeZero())
			Expect(record.BlockNumber).To(BeNil())
			Expect(record.Currency).To(Equal("USDT"))
			Expect(record.Timestamp).NotTo(BeZero())
		})

		It("rejects a hash that is already tracked", func() {
			_, err := svc.Register(ctx, validInput("0xabc"))
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Register(ctx, validInput("0xabc"))
			Expect(errors.Is(err, errs.ErrDuplicateHash)).To(BeTrue())
		})

		DescribeTable("rejects missing fields",
			func(mutate func(*model.RegisterTransactionInput), field string) {
				input := validInput("0xabc")
				mutate(&input)

				_, err := svc.Register(ctx, input)

				Expect(errors.Is(err, errs.ErrMissingField)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(field))
			},
			Entry("hash", func(i *model.RegisterTransactionInput) { i.Hash = " " }, "hash"),
			Entry("from", func(i *model.RegisterTransactionInput) { i.From = "" }, "from"),
			Entry("to", func(i *model.RegisterTransactionInput) { i.To = "" }, "to"),
			Entry("amount", func(i *model.RegisterTransactionInput) { i.Amount = "" }, "amount"),
			Entry("currency", func(i *model.RegisterTransactionInput) { i.Currency = "" }, "currency"),
		)
	})

	Describe("Poll", func() {
		BeforeEach(func() {
			_, err := svc.Register(ctx, validInput("0xabc"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns NotFound for an unknown hash", func() {
			_, err := svc.Poll(ctx, "0xmissing")
			Expect(errors.Is(err, errs.ErrNotFound)).To(BeTrue())
		})

		It("adds one confirmation per poll while pending", func() {
			for i := 1; i < threshold; i++ {
				record, err := svc.Poll(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Confirmations).To(Equal(i))
				Expect(record.Status).To(Equal(model.TransactionStatusPending))
				Expect(record.BlockNumber).To(BeNil())
			}
		})

		It("confirms on the twelfth poll with a block number in range", func() {
			var record *model.TransactionRecord
			var err error
			for i := 0; i < threshold; i++ {
				record, err = svc.Poll(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(record.Status).To(Equal(model.TransactionStatusConfirmed))
			Expect(record.Confirmations).To(Equal(threshold))
			Expect(record.BlockNumber).NotTo(BeNil())
			Expect(*record.BlockNumber).To(BeNumerically(">=", 1000000))
			Expect(*record.BlockNumber).To(BeNumerically("<", 2000000))
		})

		It("leaves a confirmed record unchanged on later polls", func() {
			tracker.SetBlockNumberSource(svc, func() int64 { return 1234567 })
			for i := 0; i < threshold; i++ {
				_, err := svc.Poll(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
			}
			confirmed, err := svc.Get(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			tracker.SetBlockNumberSource(svc, func() int64 { return 1999999 })
			again, err := svc.Poll(ctx, "0xabc")

			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(confirmed))
			Expect(*again.BlockNumber).To(Equal(int64(1234567)))
		})

		It("never lets a returned record alias the stored one", func() {
			record, err := svc.Poll(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			record.Confirmations = 99

			stored, err := svc.Get(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Confirmations).To(Equal(1))
		})

		It("counts every concurrent poll exactly once", func() {
			var wg sync.WaitGroup
			for i := 0; i < threshold+8; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := svc.Poll(ctx, "0xabc")
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			record, err := svc.Get(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Confirmations).To(Equal(threshold))
			Expect(record.Status).To(Equal(model.TransactionStatusConfirmed))
		})
	})

	Describe("MarkFailed", func() {
		BeforeEach(func() {
			_, err := svc.Register(ctx, validInput("0xabc"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("moves a pending record to failed and stops confirmations", func() {
			_, err := svc.Poll(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			record, err := svc.MarkFailed(ctx, "0xabc", "reverted")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusFailed))
			Expect(record.FailureReason).To(Equal("reverted"))

			record, err = svc.Poll(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusFailed))
			Expect(record.Confirmations).To(Equal(1))
		})

		It("does not fail a confirmed record", func() {
			for i := 0; i < threshold; i++ {
				_, err := svc.Poll(ctx, "0xabc")
				Expect(err).NotTo(HaveOccurred())
			}

			record, err := svc.MarkFailed(ctx, "0xabc", "late")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusConfirmed))
			Expect(record.FailureReason).To(BeEmpty())
		})

		It("returns NotFound for an unknown hash", func() {
			_, err := svc.MarkFailed(ctx, "0xmissing", "x")
			Expect(errors.Is(err, errs.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Await", func() {
		BeforeEach(func() {
			_, err := svc.Register(ctx, validInput("0xabc"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("polls until confirmed", func() {
			record, err := svc.Await(ctx, "0xabc", time.Millisecond, time.Second)

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusConfirmed))
		})

		It("stops with a timeout error and the last record", func() {
			_, err := svc.Register(ctx, validInput("0xdef"))
			Expect(err).NotTo(HaveOccurred())

			record, err := svc.Await(ctx, "0xdef", 5*time.Millisecond, 30*time.Millisecond)

			Expect(errors.Is(err, errs.ErrPollTimeout)).To(BeTrue())
			Expect(record.Status).To(Equal(model.TransactionStatusPending))
			Expect(record.Confirmations).To(BeNumerically(">=", 1))
		})

		It("rejects a non-positive interval or timeout", func() {
			_, err := svc.Await(ctx, "0xabc", 0, time.Second)
			Expect(err).To(HaveOccurred())

			_, err = svc.Await(ctx, "0xabc", time.Millisecond, 0)
			Expect(err).To(HaveOccurred())
		})

		It("returns immediately for a failed record", func() {
			_, err := svc.MarkFailed(ctx, "0xabc", "dropped")
			Expect(err).NotTo(HaveOccurred())

			record, err := svc.Await(ctx, "0xabc", time.Hour, time.Hour)

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(model.TransactionStatusFailed))
		})

		It("honours context cancellation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			_, err := svc.Register(ctx, validInput("0xdef"))
			Expect(err).NotTo(HaveOccurred())
			time.AfterFunc(10*time.Millisecond, cancel)

			_, err = svc.Await(cancelled, "0xdef", 50*time.Millisecond, time.Minute)

			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("PendingCount", func() {
		It("counts only pending records", func() {
			for i := 0; i < 3; i++ {
				_, err := svc.Register(ctx, validInput(fmt.Sprintf("0x%d", i)))
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := svc.MarkFailed(ctx, "0x0", "x")
			Expect(err).NotTo(HaveOccurred())

			count, err := svc.PendingCount(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})
	})
})
