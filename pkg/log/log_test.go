package log_test

import (
	"todoapi/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("NewZapLogger", func() {
	It("should honour the requested level", func() {
		logger := log.NewZapLogger("todoapi", zapcore.WarnLevel)

		Expect(logger).NotTo(BeNil())
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
	})
})
