package withdrawal_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/withdrawal"
)

var feeRate = decimal.RequireFromString("0.005")

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func bankDetails() *model.BankDetails {
	return &model.BankDetails{
		AccountNumber: "123456789012",
		IFSCCode:      "hdfc0001234",
		AccountHolder: "Asha Rao",
	}
}

var _ = Describe("Withdrawal simulator", func() {
	var (
		ctx   context.Context
		store withdrawal.IStore
		svc   withdrawal.IWithdrawal
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = withdrawal.NewMemoryStore()
		svc = withdrawal.New(store, feeRate, 50*time.Millisecond, logger.NewNop(), nil)
	})

	AfterEach(func() {
		svc.Shutdown()
	})

	Describe("Submit", func() {
		It("creates a processing request with a half percent fee", func() {
			request, err := svc.Submit(ctx, model.SubmitWithdrawalInput{
				Amount:      amount("10000"),
				BankDetails: bankDetails(),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(request.ID).To(HavePrefix("WD"))
			Expect(request.Status).To(Equal(model.WithdrawalStatusProcessing))
			Expect(request.Currency).To(Equal("INR"))
			Expect(request.Fee.String()).To(Equal("50"))
			Expect(request.EstimatedTime).To(Equal("2-3 business days"))
			Expect(request.BankDetails.IFSCCode).To(Equal("HDFC0001234"))
			Expect(request.CompletedAt).To(BeNil())
		})

		It("rounds the fee to two decimals", func() {
			request, err := svc.Submit(ctx, model.SubmitWithdrawalInput{
				Amount:      amount("1234.57"),
				BankDetails: bankDetails(),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(request.Fee.String()).To(Equal("6.17"))
		})

		It("issues unique ids", func() {
			first, err := svc.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("1"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("1"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).NotTo(Equal(second.ID))
		})

		DescribeTable("rejects incomplete input",
			func(input model.SubmitWithdrawalInput, target error, field string) {
				request, err := svc.Submit(ctx, input)

				Expect(request).To(BeNil())
				Expect(errors.Is(err, target)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(field))
			},
			Entry("missing amount", model.SubmitWithdrawalInput{BankDetails: bankDetails()}, errs.ErrMissingField, "amount"),
			Entry("missing bank details", model.SubmitWithdrawalInput{Amount: amount("10")}, errs.ErrMissingField, "bankDetails"),
			Entry("missing account number", model.SubmitWithdrawalInput{
				Amount:      amount("10"),
				BankDetails: &model.BankDetails{IFSCCode: "HDFC0001234", AccountHolder: "Asha Rao"},
			}, errs.ErrMissingField, "accountNumber"),
			Entry("blank ifsc", model.SubmitWithdrawalInput{
				Amount:      amount("10"),
				BankDetails: &model.BankDetails{AccountNumber: "1", IFSCCode: "  ", AccountHolder: "Asha Rao"},
			}, errs.ErrMissingField, "ifscCode"),
			Entry("zero amount", model.SubmitWithdrawalInput{Amount: amount("0"), BankDetails: bankDetails()}, errs.ErrInvalidAmount, "positive"),
			Entry("negative amount", model.SubmitWithdrawalInput{Amount: amount("-5"), BankDetails: bankDetails()}, errs.ErrInvalidAmount, "positive"),
		)
	})

	Describe("completion", func() {
		It("flips to completed after the delay without caller action", func() {
			request, err := svc.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("500"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())

			current, err := svc.Get(ctx, request.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Status).To(Equal(model.WithdrawalStatusProcessing))

			Eventually(func() model.WithdrawalStatus {
				current, err := svc.Get(ctx, request.ID)
				Expect(err).NotTo(HaveOccurred())
				return current.Status
			}).WithTimeout(time.Second).WithPolling(10 * time.Millisecond).Should(Equal(model.WithdrawalStatusCompleted))

			completed, err := svc.Get(ctx, request.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(completed.CompletedAt).NotTo(BeNil())
			Expect(completed.CompletedAt.After(completed.Timestamp) || completed.CompletedAt.Equal(completed.Timestamp)).To(BeTrue())

			count, err := svc.PendingCount(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("stops completing after shutdown", func() {
			request, err := svc.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("500"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())

			svc.Shutdown()

			Consistently(func() model.WithdrawalStatus {
				current, err := svc.Get(ctx, request.ID)
				Expect(err).NotTo(HaveOccurred())
				return current.Status
			}).WithTimeout(150 * time.Millisecond).WithPolling(10 * time.Millisecond).Should(Equal(model.WithdrawalStatusProcessing))
		})

		It("resumes requests left processing by an earlier process", func() {
			earlier := withdrawal.New(store, feeRate, time.Hour, logger.NewNop(), nil)
			request, err := earlier.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("500"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())
			earlier.Shutdown()

			Expect(svc.Resume(ctx)).To(Succeed())

			Eventually(func() model.WithdrawalStatus {
				current, err := svc.Get(ctx, request.ID)
				Expect(err).NotTo(HaveOccurred())
				return current.Status
			}).WithTimeout(time.Second).WithPolling(10 * time.Millisecond).Should(Equal(model.WithdrawalStatusCompleted))
		})
	})

	Describe("Get", func() {
		It("returns NotFound for an unknown id", func() {
			_, err := svc.Get(ctx, "WDUNKNOWN")
			Expect(errors.Is(err, errs.ErrNotFound)).To(BeTrue())
		})

		It("returns a detached copy", func() {
			request, err := svc.Submit(ctx, model.SubmitWithdrawalInput{Amount: amount("500"), BankDetails: bankDetails()})
			Expect(err).NotTo(HaveOccurred())
			request.Status = model.WithdrawalStatusCompleted

			current, err := svc.Get(ctx, request.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Status).To(Equal(model.WithdrawalStatusProcessing))
		})
	})
})
