package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSitePages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler()
	r.GET("/site/home", handler.Home)
	r.GET("/site/about", handler.About)

	for _, path := range []string{"/site/home", "/site/about"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, w.Code)
		}

		var page Page
		if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
			t.Fatalf("%s: failed to decode page: %v", path, err)
		}
		if page.Title == "" || len(page.Sections) == 0 {
			t.Fatalf("%s: expected populated page content", path)
		}
	}
}
