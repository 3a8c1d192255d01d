// Package api はバックエンドREST APIの型付きクライアント。
// 認可ヘッダ付与・401時の強制ログアウト・トンネル障害の判別を
// ここで一括して行い、リソース別サービスは薄く保つ。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// 保存済みトークンの読み出しの約束（sessionストアが実装）
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// 401を受けたときの後始末の約束（sessionストアが実装）
type UnauthorizedHandler interface {
	OnUnauthorized(ctx context.Context)
}

// 更新系リクエストに付けるキーを発行する約束
type IDGenerator interface {
	NewID() string
}

// APIが返す構造化エラー
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// バックエンドの代わりにトンネル（ngrok等）がHTMLを返したときの判別用。
// errors.Is(err, ErrServiceUnavailable) で引っかかる。
var ErrServiceUnavailable = errors.New("service unavailable")

type ServiceUnavailableError struct {
	Status int
	Err    error // 元のエラー
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("service unavailable (status=%d): %v", e.Status, e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

func (e *ServiceUnavailableError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	onAuthz UnauthorizedHandler
	idGen   IDGenerator
	logger  *slog.Logger
}

// DI
// tokens / onAuthz / idGen はnil可（テストや未ログイン動作のため）。
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onAuthz UnauthorizedHandler, idGen IDGenerator, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		onAuthz: onAuthz,
		idGen:   idGen,
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// do は全リクエスト共通の送受信。
//   - Authorization: Bearer はトークンがあるときだけ付ける
//   - ngrokの警告ページを飛ばすヘッダを常に付ける
//   - 401は保存済みセッションを消してからエラーを返す
//   - エラー応答のContent-TypeがHTMLならServiceUnavailableErrorに差し替える
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if c.idGen != nil && method != http.MethodGet {
		req.Header.Set("X-Idempotency-Key", c.idGen.NewID())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onAuthz != nil {
		c.onAuthz.OnUnauthorized(ctx)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw, resp.StatusCode),
		}

		if isHTML(resp.Header.Get("Content-Type")) {
			c.logger.Warn("tunnel returned html instead of api response",
				"status", resp.StatusCode, "path", path)
			return &ServiceUnavailableError{Status: resp.StatusCode, Err: apiErr}
		}

		return apiErr
	}

	if out != nil && len(raw) > 0 {
		// 生ボディが欲しい呼び出し（doRaw）はデコードせず渡す。
		// ゲートウェイのトークンは素のテキストで来ることがある。
		if rm, ok := out.(*json.RawMessage); ok {
			*rm = raw
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// doRaw は生のボディが要る呼び出し用（決済トークン等）。
func (c *Client) doRaw(ctx context.Context, method string, path string, query url.Values) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func isHTML(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "text/html")
}

// {"message": ...} / {"error": ...} を拾い、だめなら本文か
// ステータス文言をそのまま使う。
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if s := strings.TrimSpace(string(raw)); s != "" && len(s) <= 200 && !strings.HasPrefix(s, "<") {
		return s
	}
	return http.StatusText(status)
}
