package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"todoapi/internal/core"
	"todoapi/internal/http/handler"
	"todoapi/internal/http/handler/fake"
	"todoapi/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Auth handlers", func() {
	var (
		th            *handler.TodoHandler
		fakeAuth      *fake.AuthService
		fakeTodos     *fake.TodoService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeAuth = new(fake.AuthService)
		fakeTodos = new(fake.TodoService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload
		fakeValidator.DecodeFormPayloadStub = payload.Decoder{}.DecodeFormPayload

		w = httptest.NewRecorder()
		th = handler.NewTodoHandler(zap.NewNop().Sugar(), fakeValidator, fakeAuth, fakeTodos)
	})

	Describe("HandleRegister", func() {
		var body string

		BeforeEach(func() {
			body = `{"email":"alice@example.com","password":"hunter2"}`
			fakeAuth.RegisterReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			th.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return a bearer token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"access_token":"test-token","token_type":"bearer"}`))

				Expect(fakeAuth.RegisterCallCount()).To(Equal(1))
				_, email, password := fakeAuth.RegisterArgsForCall(0)
				Expect(email).To(Equal("alice@example.com"))
				Expect(password).To(Equal("hunter2"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				body = `{"email":"nope","password":"hunter2"}`
			})

			It("should return 400 without registering", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(MatchJSON(`{"detail":"Invalid request payload"}`))
				Expect(fakeAuth.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeAuth.RegisterReturns("", core.ErrEmailTaken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(MatchJSON(`{"detail":"Email already registered"}`))
			})
		})

		When("the password is too long for bcrypt", func() {
			BeforeEach(func() {
				fakeAuth.RegisterReturns("", core.ErrPasswordTooLong)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeAuth.RegisterReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var body string

		BeforeEach(func() {
			body = "username=alice%40example.com&password=hunter2"
			fakeAuth.LoginReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			th.HandleLogin(w, req)
		})

		When("the credentials are valid", func() {
			It("should return a bearer token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var resp payload.TokenResponse
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.AccessToken).To(Equal("test-token"))
				Expect(resp.TokenType).To(Equal("bearer"))

				_, email, password := fakeAuth.LoginArgsForCall(0)
				Expect(email).To(Equal("alice@example.com"))
				Expect(password).To(Equal("hunter2"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeAuth.LoginReturns("", core.ErrInvalidCredentials)
			})

			It("should return 401 with a bearer challenge", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Header().Get("WWW-Authenticate")).To(Equal("Bearer"))
				Expect(w.Body.String()).To(MatchJSON(`{"detail":"Incorrect email or password"}`))
			})
		})

		When("the form is incomplete", func() {
			BeforeEach(func() {
				body = "username=alice%40example.com"
			})

			It("should return 400 without logging in", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAuth.LoginCallCount()).To(Equal(0))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeAuth.LoginReturns("", fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Header().Get("WWW-Authenticate")).To(BeEmpty())
			})
		})
	})
})
