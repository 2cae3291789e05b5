package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrlhasang20/influencerFlow/config"
	"github.com/mrlhasang20/influencerFlow/middleware"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpireHours: 1,
		},
		Users: []config.User{
			{Username: "admin", Password: "secret", Tenant: "tenant1"},
		},
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	cfg := testAuthConfig()
	h := NewAuthHandler(cfg)

	router := gin.New()
	router.POST("/auth/login", h.Login)

	tests := []struct {
		name         string
		body         map[string]any
		expectedCode int
	}{
		{
			name:         "valid credentials",
			body:         map[string]any{"username": "admin", "password": "secret"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "wrong password",
			body:         map[string]any{"username": "admin", "password": "wrong"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown user",
			body:         map[string]any{"username": "ghost", "password": "secret"},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing password",
			body:         map[string]any{"username": "admin"},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/auth/login", tt.body)

			if w.Code != tt.expectedCode {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}

			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp LoginResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.Token == "" {
				t.Error("Expected token in response")
			}
			if resp.Tenant != "tenant1" {
				t.Errorf("Expected tenant1, got %s", resp.Tenant)
			}

			// The issued token must pass the auth middleware
			protected := gin.New()
			protected.Use(middleware.AuthMiddleware(&cfg.Auth))
			protected.GET("/auth/me", h.GetCurrentUser)

			req := httptest.NewRequest("GET", "/auth/me", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			pw := httptest.NewRecorder()
			protected.ServeHTTP(pw, req)

			if pw.Code != http.StatusOK {
				t.Fatalf("Issued token did not validate: %d %s", pw.Code, pw.Body.String())
			}
			var me map[string]string
			if err := json.Unmarshal(pw.Body.Bytes(), &me); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if me["username"] != "admin" {
				t.Errorf("Expected admin identity, got %s", me["username"])
			}
		})
	}
}

func TestAuthHandlerGetCurrentUser(t *testing.T) {
	h := NewAuthHandler(testAuthConfig())

	router := gin.New()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set("username", "admin")
		c.Set("tenant", "tenant1")
		h.GetCurrentUser(c)
	})

	req := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["username"] != "admin" || resp["tenant"] != "tenant1" {
		t.Errorf("Unexpected identity: %+v", resp)
	}
}
