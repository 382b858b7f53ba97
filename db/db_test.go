package db_test

import (
	"time"

	"code.cloudfoundry.org/app-perfmon/db"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DatabaseConfig", func() {
	decode := func(content string) (db.DatabaseConfig, error) {
		var conf db.DatabaseConfig
		err := yaml.Unmarshal([]byte(content), &conf)
		return conf, err
	}

	It("decodes pool settings", func() {
		conf, err := decode(`
url: "mysql://perfmon:secret@db:3306/perfmon"
max_open_connections: 20
max_idle_connections: 4
connection_max_lifetime: 30m
connection_max_idletime: 90s
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf).To(Equal(db.DatabaseConfig{
			URL:                   "mysql://perfmon:secret@db:3306/perfmon",
			MaxOpenConnections:    20,
			MaxIdleConnections:    4,
			ConnectionMaxLifetime: 30 * time.Minute,
			ConnectionMaxIdleTime: 90 * time.Second,
		}))
	})

	DescribeTable("rejects malformed values",
		func(content, message string) {
			_, err := decode(content)
			Expect(err).To(BeAssignableToTypeOf(&yaml.TypeError{}))
			Expect(err).To(MatchError(MatchRegexp(message)))
		},
		Entry("max_open_connections", "max_open_connections: many", "cannot unmarshal .* into int"),
		Entry("max_idle_connections", "max_idle_connections: few", "cannot unmarshal .* into int"),
		Entry("connection_max_lifetime", "connection_max_lifetime: 60k", "cannot unmarshal .* into time.Duration"),
		Entry("connection_max_idletime", "connection_max_idletime: forever", "cannot unmarshal .* into time.Duration"),
	)
})

var _ = Describe("OrderType", func() {
	It("renders as SQL", func() {
		Expect(db.ASC.SQL()).To(Equal("ASC"))
		Expect(db.DESC.SQL()).To(Equal("DESC"))
	})
})
