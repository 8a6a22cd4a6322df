package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"accountd/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		handler http.Handler
		seenId  string
	)

	BeforeEach(func() {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenId, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})
		handler = middleware.NewRequestIDMiddleware().RequestID(inner)
	})

	It("should generate a request id when none is supplied", func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		Expect(seenId).NotTo(BeEmpty())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seenId))
	})

	It("should honor an existing X-Request-ID header", func() {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "given-id")

		handler.ServeHTTP(httptest.NewRecorder(), req)
		Expect(seenId).To(Equal("given-id"))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should pass the request through", func() {
		called := false
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		})

		handler := middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(inner)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		Expect(called).To(BeTrue())
		Expect(w.Code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("CORSMiddleware", func() {
	var inner http.Handler

	BeforeEach(func() {
		inner = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	When("no allowlist is configured", func() {
		It("should echo the origin", func() {
			handler := middleware.NewCORSMiddleware(nil).CORS(inner)

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Origin", "http://example.com")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://example.com"))
			Expect(w.Header().Get("Vary")).To(Equal("Origin"))
		})
	})

	When("an allowlist is configured", func() {
		It("should not echo origins outside the list", func() {
			handler := middleware.NewCORSMiddleware([]string{"http://allowed.com"}).CORS(inner)

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Origin", "http://other.com")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})

	It("should short-circuit preflight requests with 204", func() {
		handler := middleware.NewCORSMiddleware(nil).CORS(inner)

		req := httptest.NewRequest("OPTIONS", "/", nil)
		req.Header.Set("Origin", "http://example.com")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
	})
})
