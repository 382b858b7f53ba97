package configutil_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "code.cloudfoundry.org/app-perfmon/configutil"
)

var _ = Describe("MaterializeContentInFile", func() {
	var previousDir string

	BeforeEach(func() {
		previousDir = CredentialDir
		CredentialDir = GinkgoT().TempDir()
	})

	AfterEach(func() {
		CredentialDir = previousDir
	})

	It("writes an owner-only file under the service folder", func() {
		path, err := MaterializeContentInFile("some-db", "server_ca.sslrootcert", "ca-content")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(CredentialDir, "some-db", "server_ca.sslrootcert")))

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
		expectFileContent(path, "ca-content")
	})

	It("replaces an existing file and leaves no temporary files behind", func() {
		_, err := MaterializeContentInFile("some-db", "client_key.sslkey", "old")
		Expect(err).NotTo(HaveOccurred())
		path, err := MaterializeContentInFile("some-db", "client_key.sslkey", "new")
		Expect(err).NotTo(HaveOccurred())
		expectFileContent(path, "new")

		entries, err := os.ReadDir(filepath.Dir(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("fails when the credential directory cannot be created", func() {
		blocker := filepath.Join(CredentialDir, "blocker")
		Expect(os.WriteFile(blocker, []byte("x"), 0600)).To(Succeed())
		CredentialDir = blocker

		_, err := MaterializeContentInFile("some-db", "client_key.sslkey", "content")
		Expect(err).To(MatchError(ContainSubstring("creating credential directory")))
	})
})
