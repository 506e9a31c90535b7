package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"todoapi/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/todos/", nil)
	})

	Describe("RequestID", func() {
		var seen string

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			})
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		When("the caller sends an id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.HeaderRequestID, "abc-123")
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal("abc-123"))
				Expect(w.Header().Get(middleware.HeaderRequestID)).To(Equal("abc-123"))
			})
		})

		When("the caller sends nothing", func() {
			It("should generate a uuid", func() {
				_, err := uuid.Parse(seen)
				Expect(err).NotTo(HaveOccurred())
				Expect(w.Header().Get(middleware.HeaderRequestID)).To(Equal(seen))
			})
		})

		When("the caller sends garbage", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.HeaderRequestID, strings.Repeat("x", 200))
			})

			It("should replace it", func() {
				Expect(seen).NotTo(HavePrefix("xxx"))
				_, err := uuid.Parse(seen)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Logging", func() {
		var (
			logs   *observer.ObservedLogs
			status int
		)

		BeforeEach(func() {
			status = http.StatusOK
		})

		JustBeforeEach(func() {
			core, observed := observer.New(zapcore.DebugLevel)
			logs = observed
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("hello"))
			})
			handler := middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
			middleware.NewRequestIDMiddleware().RequestID(handler).ServeHTTP(w, req)
		})

		When("the request succeeds", func() {
			It("should log one info line with the status", func() {
				Expect(logs.Len()).To(Equal(1))
				entry := logs.All()[0]
				Expect(entry.Level).To(Equal(zapcore.InfoLevel))

				fields := entry.ContextMap()
				Expect(fields["status"]).To(BeEquivalentTo(http.StatusOK))
				Expect(fields["bytes"]).To(BeEquivalentTo(5))
				Expect(fields["path"]).To(Equal("/todos/"))
				Expect(fields["request_id"]).To(Equal(w.Header().Get(middleware.HeaderRequestID)))
			})
		})

		When("the handler returns a client error", func() {
			BeforeEach(func() {
				status = http.StatusNotFound
			})

			It("should log at warn level", func() {
				Expect(logs.All()[0].Level).To(Equal(zapcore.WarnLevel))
			})
		})

		When("the handler fails", func() {
			BeforeEach(func() {
				status = http.StatusInternalServerError
			})

			It("should log at error level", func() {
				Expect(logs.All()[0].Level).To(Equal(zapcore.ErrorLevel))
			})
		})
	})

	Describe("Recover", func() {
		It("should turn a panic into a 500", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			})

			Expect(func() {
				middleware.NewRecoverMiddleware(zap.NewNop().Sugar()).Recover(next).ServeHTTP(w, req)
			}).NotTo(Panic())

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{"detail":"Oops! Something went wrong. Please try again later."}`))
		})

		It("should pass through when nothing panics", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			middleware.NewRecoverMiddleware(zap.NewNop().Sugar()).Recover(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})
})
