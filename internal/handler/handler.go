package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/waleedthermon/Doctracking/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Roster    *RosterHandler
	Drawing   *DrawingHandler
	Document  *DocumentHandler
	Dashboard *DashboardHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Roster:    NewRosterHandler(svc.Roster),
		Drawing:   NewDrawingHandler(svc.Drawing),
		Document:  NewDocumentHandler(svc.Document),
		Dashboard: NewDashboardHandler(svc.Drawing),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// respondError maps the service error kinds to HTTP responses: unknown
// lookup keys to 404, validation and import problems to 400, everything
// else (including persistence failures) to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, repository.ErrMissingColumn):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
