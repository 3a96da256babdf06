package logger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dwarvesf/swiftchain-backend/internal/types/environments"
)

var _ = Describe("Logger configs", func() {
	DescribeTable("per environment",
		func(build func() zap.Config, level zapcore.Level, encoding string, quiet bool, outputs []string) {
			cfg := build()

			Expect(cfg.Level.Level()).To(Equal(level))
			Expect(cfg.Encoding).To(Equal(encoding))
			Expect(cfg.DisableCaller).To(Equal(quiet))
			Expect(cfg.DisableStacktrace).To(Equal(quiet))
			if outputs == nil {
				Expect(cfg.OutputPaths).To(BeEmpty())
				Expect(cfg.ErrorOutputPaths).To(BeEmpty())
			} else {
				Expect(cfg.OutputPaths).To(Equal(outputs))
				Expect(cfg.ErrorOutputPaths).To(Equal([]string{"stderr"}))
			}
		},
		Entry("production", newProductionLoggerConfig, zap.InfoLevel, "json", false, []string{"stdout"}),
		Entry("staging", newStagingLoggerConfig, zap.InfoLevel, "json", true, []string{"stdout"}),
		Entry("development", newDevelopmentLoggerConfig, zap.DebugLevel, "console", true, []string{"stdout"}),
		Entry("test", newTestLoggerConfig, zap.InfoLevel, "json", false, nil),
	)

	Describe("test environment", func() {
		It("builds a logger without any sink", func() {
			l, err := newTestLoggerConfig().Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(l.Core().Enabled(zap.DebugLevel)).To(BeFalse())
			Expect(l.Core().Enabled(zap.InfoLevel)).To(BeTrue())
		})

		It("is selected by New and accepts field maps", func() {
			l := New(environments.Test)

			Expect(func() {
				l.Info("[Tracker][Poll] transaction confirmed", map[string]string{"hash": "0xabc"})
				l.Warn("[Tracker][MarkFailed] transaction failed")
			}).NotTo(Panic())
		})
	})

	Describe("NewNop", func() {
		It("discards every level", func() {
			l := NewNop()

			Expect(l.wrappedLogger.Core().Enabled(zap.ErrorLevel)).To(BeFalse())
		})
	})
})
