package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// userInfoHeader 是网关注入的用户信息头，值为 base64 编码的 JWT claims。
const userInfoHeader = "x-apigateway-api-userinfo"

const defaultQueryTimeout = 3 * time.Second

// HandlerTimeouts 配置 Handler 的查询超时，零值回退默认。
type HandlerTimeouts struct {
	Query time.Duration
}

// RequestMetadata 携带从请求头解析出的调用方身份。
// UserID 为空且 InvalidUserInfo 为 false 表示未登录请求。
type RequestMetadata struct {
	UserID          string
	InvalidUserInfo bool
}

// BaseHandler 提供各 Handler 共用的超时控制与身份解析。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 返回带查询超时的子 context。
func (h *BaseHandler) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, h.timeouts.Query)
}

// ExtractMetadata 解析网关注入的用户信息头。
// 头缺失视为未登录；头存在但无法解析或缺少 sub 视为非法凭证。
func (h *BaseHandler) ExtractMetadata(r *http.Request) RequestMetadata {
	raw := r.Header.Get(userInfoHeader)
	if raw == "" {
		return RequestMetadata{}
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		payload, err = base64.StdEncoding.DecodeString(raw)
	}
	if err != nil {
		return RequestMetadata{InvalidUserInfo: true}
	}
	var claims struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Sub == "" {
		return RequestMetadata{InvalidUserInfo: true}
	}
	return RequestMetadata{UserID: claims.Sub}
}
