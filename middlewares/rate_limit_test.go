package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// helper to reset global state between tests
func resetLimiters() {
	visitorsMu.Lock()
	visitors = make(map[string]*visitor)
	visitorsMu.Unlock()

	registerVisitorsMu.Lock()
	registerVisitors = make(map[string]*visitor)
	registerVisitorsMu.Unlock()
}

// makeTestRouter creates a Gin engine with a single middleware and a test route.
func makeTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestRateLimitMiddleware_AllowsBurstThenLimits(t *testing.T) {
	resetLimiters()

	router := makeTestRouter(RateLimitMiddleware())

	// The burst size is 100; everything up to it should pass.
	for i := 0; i < 100; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 on request %d, got %d", i+1, w.Code)
		}
	}

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 past the burst, got %d", w.Code)
	}
}

func TestRegisterRateLimitMiddleware_StricterLimit(t *testing.T) {
	resetLimiters()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RegisterRateLimitMiddleware())
	r.POST("/register", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "registered"})
	})

	for i := 0; i < 100; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/register", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 on attempt %d, got %d", i+1, w.Code)
		}
	}

	req, _ := http.NewRequest(http.MethodPost, "/register", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 past the burst, got %d", w.Code)
	}
}
