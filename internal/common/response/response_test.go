// Package response 响应模块单元测试
package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(w *httptest.ResponseRecorder) Response {
	var resp Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()

	Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(w)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestSuccessWithMessage(t *testing.T) {
	c, w := newTestContext()

	SuccessWithMessage(c, "操作成功", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(w)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "操作成功", resp.Message)
}

func TestCreated(t *testing.T) {
	c, w := newTestContext()

	Created(c, map[string]int64{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(w)
	assert.Equal(t, 0, resp.Code)
}

func TestError(t *testing.T) {
	c, w := newTestContext()

	Error(c, http.StatusConflict, 2001, "记录已存在")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(w)
	assert.Equal(t, 2001, resp.Code)
	assert.Equal(t, "记录已存在", resp.Message)
}

func TestBadRequest(t *testing.T) {
	c, w := newTestContext()

	BadRequest(c, "无效的ID")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(w)
	assert.Equal(t, 400, resp.Code)
}

func TestNotFound(t *testing.T) {
	c, w := newTestContext()

	NotFound(c, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(w)
	assert.Equal(t, "not found", resp.Message)
}

func TestConflict(t *testing.T) {
	c, w := newTestContext()

	Conflict(c, "房间号已存在")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(w)
	assert.Equal(t, 409, resp.Code)
	assert.Equal(t, "房间号已存在", resp.Message)
}

func TestUnprocessableEntity(t *testing.T) {
	c, w := newTestContext()

	UnprocessableEntity(c, "容量必须大于等于 1")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(w)
	assert.Equal(t, 422, resp.Code)
}

func TestInternalError(t *testing.T) {
	c, w := newTestContext()

	InternalError(c, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(w)
	assert.Equal(t, "internal server error", resp.Message)
}
