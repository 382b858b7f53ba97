package models_test

import (
	"time"

	. "code.cloudfoundry.org/app-perfmon/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RateLimitConfig", func() {
	It("accepts a positive window", func() {
		conf := RateLimitConfig{Requests: 10, Window: time.Minute}
		Expect(conf.Validate()).To(Succeed())
		Expect(conf.String()).To(Equal("10/1m0s"))
	})

	DescribeTable("rejects",
		func(conf RateLimitConfig, message string) {
			Expect(conf.Validate()).To(MatchError(ContainSubstring(message)))
		},
		Entry("no requests", RateLimitConfig{Window: time.Minute}, "requests must be positive"),
		Entry("negative window", RateLimitConfig{Requests: 1, Window: -time.Second}, "window must be positive"),
	)
})
