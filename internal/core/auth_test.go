package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"todoapi/internal/core"
	"todoapi/internal/core/fake"
	"todoapi/internal/repository"
	tokenIssuer "todoapi/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthService", func() {
	var (
		service    *core.AuthService
		fakeUsers  *fake.UserRepository
		fakeTokens *fake.TokenIssuer
		fakeHasher *fake.PasswordHasher
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeTokens = new(fake.TokenIssuer)
		fakeHasher = new(fake.PasswordHasher)
		service = core.NewAuthService(zap.NewNop().Sugar(), fakeUsers, fakeTokens, fakeHasher, 30*time.Minute)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeUsers.FindUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
		fakeHasher.HashReturns("hashed", nil)
		fakeTokens.IssueReturns("signed.token.value", nil)
	})

	Describe("Register", func() {
		var (
			email    string
			password string
			token    string
			err      error
		)

		BeforeEach(func() {
			email = "  Alice@Example.COM "
			password = "hunter2"
			fakeUsers.CreateUserStub = func(ctx context.Context, email, hash string) (repository.User, error) {
				return repository.User{ID: 1, Email: email, HashedPassword: hash}, nil
			}
		})

		JustBeforeEach(func() {
			token, err = service.Register(ctx, email, password)
		})

		When("the email is free", func() {
			It("should create the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token.value"))

				Expect(fakeHasher.HashCallCount()).To(Equal(1))
				Expect(fakeHasher.HashArgsForCall(0)).To(Equal("hunter2"))

				Expect(fakeUsers.CreateUserCallCount()).To(Equal(1))
				_, actualEmail, actualHash := fakeUsers.CreateUserArgsForCall(0)
				Expect(actualEmail).To(Equal("alice@example.com"))
				Expect(actualHash).To(Equal("hashed"))
			})

			It("should issue a token for the normalized email", func() {
				Expect(fakeTokens.IssueCallCount()).To(Equal(1))
				subject, ttl := fakeTokens.IssueArgsForCall(0)
				Expect(subject).To(Equal("alice@example.com"))
				Expect(ttl).To(Equal(30 * time.Minute))
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{ID: 9, Email: "alice@example.com"}, nil)
			})

			It("should return ErrEmailTaken without creating anything", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(token).To(BeEmpty())
				Expect(fakeHasher.HashCallCount()).To(Equal(0))
				Expect(fakeUsers.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("another registration wins the race", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.User{}, repository.ErrDuplicateEmail)
			})

			It("should return ErrEmailTaken", func() {
				Expect(err).To(MatchError(core.ErrEmailTaken))
				Expect(fakeTokens.IssueCallCount()).To(Equal(0))
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				password = strings.Repeat("p", core.MaxPasswordBytes+1)
			})

			It("should return ErrPasswordTooLong", func() {
				Expect(err).To(MatchError(core.ErrPasswordTooLong))
				Expect(fakeUsers.FindUserByEmailCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("find user by email: fake error"))
			})
		})

		When("hashing fails", func() {
			BeforeEach(func() {
				fakeHasher.HashReturns("", fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("hash password: fake error"))
				Expect(fakeUsers.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("creating the user fails", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeTokens.IssueReturns("", fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("signing token: fake error"))
			})
		})
	})

	Describe("Login", func() {
		var (
			email string
			token string
			err   error
		)

		BeforeEach(func() {
			email = "Alice@example.com"
			fakeUsers.FindUserByEmailReturns(repository.User{ID: 1, Email: "alice@example.com", HashedPassword: "stored-hash"}, nil)
			fakeHasher.VerifyReturns(true)
		})

		JustBeforeEach(func() {
			token, err = service.Login(ctx, email, "hunter2")
		})

		When("the credentials are valid", func() {
			It("should issue a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token.value"))

				_, lookedUp := fakeUsers.FindUserByEmailArgsForCall(0)
				Expect(lookedUp).To(Equal("alice@example.com"))

				password, hash := fakeHasher.VerifyArgsForCall(0)
				Expect(password).To(Equal("hunter2"))
				Expect(hash).To(Equal("stored-hash"))

				subject, _ := fakeTokens.IssueArgsForCall(0)
				Expect(subject).To(Equal("alice@example.com"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeHasher.VerifyReturns(false)
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeTokens.IssueCallCount()).To(Equal(0))
			})
		})

		When("the email is unknown", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the same error as a wrong password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeTokens.IssueCallCount()).To(Equal(0))
			})

			It("should still run a password comparison", func() {
				Expect(fakeHasher.VerifyCallCount()).To(Equal(1))
				password, hash := fakeHasher.VerifyArgsForCall(0)
				Expect(password).To(Equal("hunter2"))
				Expect(hash).To(HavePrefix("$2a$"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("find user by email: fake error"))
				Expect(err).NotTo(MatchError(core.ErrInvalidCredentials))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			user core.User
			err  error
		)

		BeforeEach(func() {
			fakeTokens.VerifyReturns("alice@example.com", nil)
			fakeUsers.FindUserByEmailReturns(repository.User{ID: 4, Email: "alice@example.com", HashedPassword: "h"}, nil)
		})

		JustBeforeEach(func() {
			user, err = service.Authenticate(ctx, "some.bearer.token")
		})

		When("the token is valid", func() {
			It("should resolve the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.User{ID: 4, Email: "alice@example.com"}))
				Expect(fakeTokens.VerifyArgsForCall(0)).To(Equal("some.bearer.token"))

				_, subject := fakeUsers.FindUserByEmailArgsForCall(0)
				Expect(subject).To(Equal("alice@example.com"))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				fakeTokens.VerifyReturns("", tokenIssuer.ErrTokenExpired)
			})

			It("should return ErrExpiredToken", func() {
				Expect(err).To(MatchError(core.ErrExpiredToken))
				Expect(fakeUsers.FindUserByEmailCallCount()).To(Equal(0))
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeTokens.VerifyReturns("", tokenIssuer.ErrTokenNotValid)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(err).NotTo(MatchError(core.ErrExpiredToken))
			})
		})

		When("the subject no longer exists", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUnknownSubject", func() {
				Expect(err).To(MatchError(core.ErrUnknownSubject))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.FindUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("find token subject: fake error"))
			})
		})
	})
})
