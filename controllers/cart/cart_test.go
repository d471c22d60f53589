package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalog-labs/catalog-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondWith(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondCartError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondCartErrorMapping(t *testing.T) {
	code, body := respondWith(t, services.ErrQuantityTooLow)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Quantity must be >= 1", body["error"])

	code, body = respondWith(t, &services.StockError{Requested: 5, Available: 2})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Requested quantity exceeds stock.", body["error"])
	assert.Equal(t, float64(5), body["requested"])
	assert.Equal(t, float64(2), body["available"])

	code, _ = respondWith(t, services.ErrCartNotFound)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = respondWith(t, services.ErrProductNotFound)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = respondWith(t, services.ErrItemNotFound)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = respondWith(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestCartParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, ok := cartParam(c)
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = cartParam(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
