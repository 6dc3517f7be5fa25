package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStringToID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := StringToID(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func router(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

func TestParamIDRendersNotFound(t *testing.T) {
	r := router(t)
	r.GET("/items/:id", func(c *gin.Context) {
		if id, ok := ParamID(c, "id"); ok {
			c.String(http.StatusOK, "%d", id)
		}
	})

	for path, code := range map[string]int{"/items/7": http.StatusOK, "/items/0": http.StatusNotFound, "/items/x": http.StatusNotFound} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, w.Code, path)
	}
}

func TestRedirectThenRenderShowsNotice(t *testing.T) {
	r := router(t)
	r.POST("/save", func(c *gin.Context) { Redirect(c, "/done", flash.Success("Saved!")) })
	r.GET("/done", func(c *gin.Context) { Render(c, http.StatusOK, "home.html", gin.H{"Title": "Home"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/done", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/done", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	next := httptest.NewRecorder()
	r.ServeHTTP(next, req)
	assert.Contains(t, next.Body.String(), "Saved!")
	require.Len(t, next.Result().Cookies(), 1)
	assert.Less(t, next.Result().Cookies()[0].MaxAge, 0)
}
