package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// FeedServiceAPI 定义 FeedHandler 依赖的 Service 能力。
type FeedServiceAPI interface {
	GenerateFeed(ctx context.Context, userID *uuid.UUID, cfg services.FeedGenerationConfig) (*vo.FeedResponse, error)
}

// FeedHandler 处理 Feed 查询请求。
type FeedHandler struct {
	*BaseHandler
	service FeedServiceAPI
	log     *log.Helper
}

// NewFeedHandler 构造 FeedHandler。
func NewFeedHandler(feed FeedServiceAPI, base *BaseHandler, logger log.Logger) *FeedHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &FeedHandler{
		BaseHandler: base,
		service:     feed,
		log:         log.NewHelper(logger),
	}
}

// GetFeed 处理 GET /v1/feed。未携带用户信息头按未登录路径生成。
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	meta := h.ExtractMetadata(r)
	if meta.InvalidUserInfo {
		writeError(w, http.StatusUnauthorized, "invalid user info")
		return
	}
	var userID *uuid.UUID
	if meta.UserID != "" {
		parsed, err := uuid.Parse(meta.UserID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid user info")
			return
		}
		userID = &parsed
	}

	cfg, err := parseFeedQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.WithTimeout(r.Context())
	defer cancel()

	res, err := h.service.GenerateFeed(ctx, userID, cfg)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, services.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.WithContext(r.Context()).Errorw("msg", "generate feed failed", "error", err)
		writeError(w, http.StatusInternalServerError, "generate feed failed")
	}
}

// parseFeedQuery 解析 limit 与 exclude_ids 查询参数。
// limit 不合法（非整数）在此拒绝，负数交由业务层按配置错误处理。
func parseFeedQuery(r *http.Request) (services.FeedGenerationConfig, error) {
	var cfg services.FeedGenerationConfig
	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid limit %q", raw)
		}
		cfg.Slots = limit
	}
	if raw := query.Get("exclude_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return cfg, fmt.Errorf("invalid exclude id %q", part)
			}
			cfg.ExcludeIDs = append(cfg.ExcludeIDs, id)
		}
	}
	return cfg, nil
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
