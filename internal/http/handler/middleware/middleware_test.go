package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"landgrid/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		mw       *middleware.RequestIDMiddleware
		recorder *httptest.ResponseRecorder
		captured string
	)

	BeforeEach(func() {
		mw = middleware.NewRequestIDMiddleware()
		recorder = httptest.NewRecorder()
		captured = ""
	})

	next := func() http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v := r.Context().Value(middleware.RequestIDKey); v != nil {
				captured = v.(string)
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	It("should generate a request id and expose it in context and header", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		mw.RequestID(next()).ServeHTTP(recorder, req)

		Expect(captured).NotTo(BeEmpty())
		Expect(recorder.Header().Get("X-Request-Id")).To(Equal(captured))
	})

	It("should honor an incoming request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "trace-123")
		mw.RequestID(next()).ServeHTTP(recorder, req)

		Expect(captured).To(Equal("trace-123"))
		Expect(recorder.Header().Get("X-Request-Id")).To(Equal("trace-123"))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should pass the response through untouched", func() {
		mw := middleware.NewLoggingMiddleware(zap.NewNop().Sugar())
		recorder := httptest.NewRecorder()

		handler := mw.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}))
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(recorder.Code).To(Equal(http.StatusTeapot))
		Expect(recorder.Body.String()).To(Equal("short and stout"))
	})
})

var _ = Describe("CORSMiddleware", func() {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	When("specific origins are configured", func() {
		var mw *middleware.CORSMiddleware

		BeforeEach(func() {
			mw = middleware.NewCORSMiddleware([]string{"https://game.example"})
		})

		It("should allow a listed origin", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "https://game.example")

			mw.CORS(okHandler).ServeHTTP(recorder, req)

			Expect(recorder.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://game.example"))
		})

		It("should not grant an unlisted origin", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "https://evil.example")

			mw.CORS(okHandler).ServeHTTP(recorder, req)

			Expect(recorder.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})

		It("should short-circuit preflight requests", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodOptions, "/", nil)
			req.Header.Set("Origin", "https://game.example")

			mw.CORS(okHandler).ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
			Expect(recorder.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("POST"))
		})
	})

	When("no origins are configured", func() {
		It("should allow everything", func() {
			mw := middleware.NewCORSMiddleware(nil)
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "https://anywhere.example")

			mw.CORS(okHandler).ServeHTTP(recorder, req)

			Expect(recorder.Header().Get("Access-Control-Allow-Origin")).NotTo(BeEmpty())
		})
	})
})

var _ = Describe("RateLimitMiddleware", func() {
	It("should throttle a client that exceeds its burst", func() {
		mw := middleware.NewRateLimitMiddleware(1, 1)
		handler := mw.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(first.Code).To(Equal(http.StatusOK))

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(second.Code).To(Equal(http.StatusTooManyRequests))
	})

	It("should track clients independently", func() {
		mw := middleware.NewRateLimitMiddleware(1, 1)
		handler := mw.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		burned := httptest.NewRequest(http.MethodGet, "/", nil)
		burned.RemoteAddr = "198.51.100.1:1000"
		handler.ServeHTTP(httptest.NewRecorder(), burned)
		handler.ServeHTTP(httptest.NewRecorder(), burned)

		fresh := httptest.NewRequest(http.MethodGet, "/", nil)
		fresh.RemoteAddr = "198.51.100.2:1000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, fresh)
		Expect(recorder.Code).To(Equal(http.StatusOK))
	})
})
