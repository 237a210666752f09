package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// injectUser mimics the auth middleware for tests
func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func setupWatchRouter(h *WatchHandler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(injectUser(userID))

	router.POST("/watchlists", h.Create)
	router.GET("/watchlists", h.List)
	router.DELETE("/watchlists/:id", h.Delete)
	router.POST("/watchlists/scan", h.TriggerScan)
	router.GET("/notifications", h.Notifications)

	return router
}

func TestWatchHandler_CreateAndList(t *testing.T) {
	watchSvc := NewMockWatchService()
	router := setupWatchRouter(NewWatchHandler(watchSvc, &MockScanService{}), "user-1")

	body, _ := json.Marshal(map[string]interface{}{"event_id": 1, "max_price": 60})
	req, _ := http.NewRequest(http.MethodPost, "/watchlists", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, resp.Code, resp.Body.String())
	}

	req, _ = http.NewRequest(http.MethodGet, "/watchlists", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	var listBody struct {
		Data []struct {
			EventID int64 `json:"event_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(listBody.Data) != 1 || listBody.Data[0].EventID != 1 {
		t.Errorf("unexpected watchlist: %+v", listBody.Data)
	}
}

func TestWatchHandler_Create_EventMissing(t *testing.T) {
	router := setupWatchRouter(NewWatchHandler(NewMockWatchService(), &MockScanService{}), "user-1")

	body, _ := json.Marshal(map[string]interface{}{"event_id": 100})
	req, _ := http.NewRequest(http.MethodPost, "/watchlists", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, resp.Code)
	}
}

func TestWatchHandler_RequiresAuth(t *testing.T) {
	router := setupWatchRouter(NewWatchHandler(NewMockWatchService(), &MockScanService{}), "")

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/watchlists"},
		{http.MethodGet, "/watchlists"},
		{http.MethodDelete, "/watchlists/1"},
		{http.MethodGet, "/notifications"},
		{http.MethodPost, "/watchlists/scan"},
	} {
		req, _ := http.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(`{}`)))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, http.StatusUnauthorized, resp.Code)
		}
	}
}

func TestWatchHandler_Delete_Ownership(t *testing.T) {
	watchSvc := NewMockWatchService()
	owner := setupWatchRouter(NewWatchHandler(watchSvc, &MockScanService{}), "user-1")
	other := setupWatchRouter(NewWatchHandler(watchSvc, &MockScanService{}), "user-2")

	body, _ := json.Marshal(map[string]interface{}{"event_id": 1})
	req, _ := http.NewRequest(http.MethodPost, "/watchlists", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	owner.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", resp.Code)
	}

	// Foreign watch IDs are not distinguishable from missing ones.
	req, _ = http.NewRequest(http.MethodDelete, "/watchlists/1", nil)
	resp = httptest.NewRecorder()
	other.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status %d for foreign delete, got %d", http.StatusNotFound, resp.Code)
	}

	req, _ = http.NewRequest(http.MethodDelete, "/watchlists/1", nil)
	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("expected status %d for owner delete, got %d", http.StatusOK, resp.Code)
	}

	req, _ = http.NewRequest(http.MethodDelete, "/watchlists/1", nil)
	resp = httptest.NewRecorder()
	owner.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status %d for repeated delete, got %d", http.StatusNotFound, resp.Code)
	}
}

func TestWatchHandler_TriggerScan(t *testing.T) {
	scanSvc := &MockScanService{created: 3}
	router := setupWatchRouter(NewWatchHandler(NewMockWatchService(), scanSvc), "user-1")

	req, _ := http.NewRequest(http.MethodPost, "/watchlists/scan", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	var body struct {
		Data struct {
			Created int `json:"created"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.Created != 3 {
		t.Errorf("created = %d, want 3", body.Data.Created)
	}
}
