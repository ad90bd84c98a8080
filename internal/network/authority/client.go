// Package authority 封装远端规则服务器的 HTTP 接口。
// 服务端是规则与回合顺序的唯一权威，本包只负责收发与解析，
// 不触碰本地游戏状态。
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nowauno/unoterm/internal/apperrors"
	"github.com/nowauno/unoterm/internal/game/card"
	"github.com/nowauno/unoterm/internal/logger"
)

// Client 远端规则服务器客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient 创建客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// StartResult 开局响应
type StartResult struct {
	GameID     string
	NextPlayer string
	TopCard    card.Card
}

// PlayResult 出牌响应，Rejected 与其余字段互斥
type PlayResult struct {
	Rejected   bool
	Message    string
	TopCard    *card.Card
	NextPlayer string
	GameOver   bool
	Scores     map[string]int
}

// DrawResult 摸牌响应
type DrawResult struct {
	Rejected   bool
	Message    string
	NextPlayer string
}

// Start 开局。调用方保证恰好 4 个互不相同的非空玩家名。
func (c *Client) Start(ctx context.Context, players []string) (*StartResult, error) {
	var raw struct {
		ID         string     `json:"Id"`
		NextPlayer string     `json:"NextPlayer"`
		TopCard    *card.Card `json:"TopCard"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/Game/Start", nil, players, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" || raw.NextPlayer == "" || raw.TopCard == nil {
		return nil, apperrors.Protocol("开局响应缺少必要字段", nil)
	}
	return &StartResult{GameID: raw.ID, NextPlayer: raw.NextPlayer, TopCard: *raw.TopCard}, nil
}

// Hand 获取某玩家的全部手牌，结果整体替换本地手牌
func (c *Client) Hand(ctx context.Context, gameID, player string) ([]card.Card, error) {
	query := url.Values{"playerName": {player}}
	var raw struct {
		Cards []card.Card `json:"Cards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/Game/GetCards/"+gameID, query, nil, &raw); err != nil {
		return nil, err
	}
	if raw.Cards == nil {
		return nil, apperrors.Protocol("手牌响应缺少 Cards 字段", nil)
	}
	return raw.Cards, nil
}

// TopCard 获取弃牌堆顶的牌，作为出牌响应缺少牌面时的对账兜底
func (c *Client) TopCard(ctx context.Context, gameID string) (card.Card, error) {
	var top card.Card
	if err := c.do(ctx, http.MethodGet, "/api/Game/TopCard/"+gameID, nil, nil, &top); err != nil {
		return card.Card{}, err
	}
	return top, nil
}

// PlayCard 尝试出牌。万能牌必须带 wildColor，这是调用方契约，
// 普通牌的 wildColor 固定传牌面颜色。
func (c *Client) PlayCard(ctx context.Context, gameID string, played card.Card, wildColor card.Color) (*PlayResult, error) {
	query := url.Values{
		"value":     {played.Value},
		"color":     {string(played.Color)},
		"wildColor": {string(wildColor)},
	}
	var raw struct {
		Message    string         `json:"Message"`
		TopCard    *card.Card     `json:"TopCard"`
		NextPlayer string         `json:"NextPlayer"`
		GameOver   bool           `json:"GameOver"`
		Scores     map[string]int `json:"Scores"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/Game/PlayCard/"+gameID, query, nil, &raw); err != nil {
		return nil, err
	}

	// 服务端拒绝时只带 Message，统一成判别式结果
	if raw.NextPlayer == "" {
		if raw.Message == "" {
			return nil, apperrors.Protocol("出牌响应既无结果也无拒绝原因", nil)
		}
		return &PlayResult{Rejected: true, Message: raw.Message}, nil
	}
	return &PlayResult{
		Message:    raw.Message,
		TopCard:    raw.TopCard,
		NextPlayer: raw.NextPlayer,
		GameOver:   raw.GameOver,
		Scores:     raw.Scores,
	}, nil
}

// DrawCard 尝试摸牌
func (c *Client) DrawCard(ctx context.Context, gameID, player string) (*DrawResult, error) {
	query := url.Values{"playerName": {player}}
	var raw struct {
		Message    string `json:"Message"`
		NextPlayer string `json:"NextPlayer"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/Game/DrawCard/"+gameID, query, nil, &raw); err != nil {
		return nil, err
	}
	if raw.NextPlayer == "" {
		if raw.Message == "" {
			return nil, apperrors.Protocol("摸牌响应既无结果也无拒绝原因", nil)
		}
		return &DrawResult{Rejected: true, Message: raw.Message}, nil
	}
	return &DrawResult{Message: raw.Message, NextPlayer: raw.NextPlayer}, nil
}

// do 发送请求并解析 JSON 响应体
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Protocol("请求体序列化失败", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.Transport("构造请求失败", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	logger.LogInfo("authority request id=%s %s %s", requestID, method, endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.LogError("authority request id=%s failed: %v", requestID, err)
		return apperrors.Transport("无法连接服务器", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		logger.LogError("authority request id=%s status=%d body=%q", requestID, resp.StatusCode, snippet)
		return apperrors.Transport(fmt.Sprintf("服务器返回 HTTP %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.LogError("authority request id=%s decode failed: %v", requestID, err)
		return apperrors.Protocol("响应解析失败", err)
	}
	return nil
}
