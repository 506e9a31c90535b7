package password_test

import (
	"strings"

	"todoapi/pkg/password"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("BcryptHasher", func() {
	var hasher *password.BcryptHasher

	BeforeEach(func() {
		hasher = password.NewBcryptHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("should produce a different digest on every call", func() {
			first, err := hasher.Hash("pw1")
			Expect(err).NotTo(HaveOccurred())
			second, err := hasher.Hash("pw1")
			Expect(err).NotTo(HaveOccurred())

			Expect(first).NotTo(Equal(second))
			Expect(first).NotTo(ContainSubstring("pw1"))
			Expect(hasher.Verify("pw1", first)).To(BeTrue())
			Expect(hasher.Verify("pw1", second)).To(BeTrue())
		})

		It("should use the configured cost", func() {
			digest, err := hasher.Hash("pw1")
			Expect(err).NotTo(HaveOccurred())

			cost, err := bcrypt.Cost([]byte(digest))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.MinCost))
		})

		When("the password is longer than 72 bytes", func() {
			It("should return ErrPasswordTooLong", func() {
				_, err := hasher.Hash(strings.Repeat("a", 73))
				Expect(err).To(MatchError(password.ErrPasswordTooLong))
			})
		})
	})

	Describe("Verify", func() {
		var digest string

		BeforeEach(func() {
			var err error
			digest, err = hasher.Hash("correct horse")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a wrong password", func() {
			Expect(hasher.Verify("correct hors", digest)).To(BeFalse())
			Expect(hasher.Verify("", digest)).To(BeFalse())
		})

		When("the password fills the 72 byte limit", func() {
			var long string

			BeforeEach(func() {
				long = strings.Repeat("a", password.MaxLength)

				var err error
				digest, err = hasher.Hash(long)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should match the exact password", func() {
				Expect(hasher.Verify(long, digest)).To(BeTrue())
			})

			It("should reject the password with anything appended", func() {
				Expect(hasher.Verify(long+"WRONG-SUFFIX", digest)).To(BeFalse())
				Expect(hasher.Verify(long+"a", digest)).To(BeFalse())
			})
		})

		It("should reject a malformed digest", func() {
			Expect(hasher.Verify("correct horse", "not-a-bcrypt-hash")).To(BeFalse())
		})
	})

	Describe("NewBcryptHasher", func() {
		It("should fall back to the default cost when out of range", func() {
			digest, err := password.NewBcryptHasher(0).Hash("pw")
			Expect(err).NotTo(HaveOccurred())

			cost, err := bcrypt.Cost([]byte(digest))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.DefaultCost))
		})
	})
})
