package healthendpoint_test

import (
	"context"
	"errors"
	"net/http"

	"code.cloudfoundry.org/app-perfmon/fakes"
	. "code.cloudfoundry.org/app-perfmon/healthendpoint"
	"github.com/aws/aws-sdk-go-v2/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("BucketProbe", func() {
	var client *fakes.FakeBucketHeader

	BeforeEach(func() {
		client = &fakes.FakeBucketHeader{}
	})

	It("heads the configured bucket", func() {
		Expect(BucketProbe(client, "perfmon-artifacts")(context.Background())).To(Succeed())
		Expect(client.HeadBucketCallCount()).To(Equal(1))
		_, input, _ := client.HeadBucketArgsForCall(0)
		Expect(aws.ToString(input.Bucket)).To(Equal("perfmon-artifacts"))
	})

	It("reports a missing bucket", func() {
		client.HeadBucketReturns(nil, errors.New("NotFound"))
		Expect(BucketProbe(client, "perfmon-artifacts")(context.Background())).To(MatchError("NotFound"))
	})

	It("is healthy without a bucket and makes no call", func() {
		Expect(BucketProbe(client, "")(context.Background())).To(Succeed())
		Expect(client.HeadBucketCallCount()).To(Equal(0))
	})
})

var _ = Describe("SessionURLProbe", func() {
	var server *ghttp.Server

	BeforeEach(func() {
		server = ghttp.NewServer()
	})

	AfterEach(func() {
		server.Close()
	})

	It("accepts a 2xx answer", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest(http.MethodGet, "/session"),
			ghttp.RespondWith(http.StatusNoContent, nil),
		))
		Expect(SessionURLProbe(http.DefaultClient, server.URL()+"/session")(context.Background())).To(Succeed())
	})

	It("rejects any other status", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusBadGateway, "upstream down"))
		err := SessionURLProbe(http.DefaultClient, server.URL()+"/session")(context.Background())
		Expect(err).To(MatchError("session check returned status 502"))
	})

	It("fails when the peer is unreachable", func() {
		url := server.URL() + "/session"
		server.Close()
		Expect(SessionURLProbe(http.DefaultClient, url)(context.Background())).NotTo(Succeed())
	})
})
