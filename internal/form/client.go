// Package form 物品表单核心：校验、归属守卫、提交状态机。
// 对应产品里"发布/编辑物品"这张表单。后端是外部协作方，
// 通过 Client 走 HTTP；分类/城区参照数据由页面预取后传入，
// 表单核心自身不拉取。
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== 公共类型 ====================

// Ref 参照数据条目 (分类/城区)
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session 当前登录身份
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// Owner 物品归属者
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// PageData 表单页预取数据
type PageData struct {
	Categories []Ref `json:"categories"`
	Locations  []Ref `json:"locations"`
}

// ==================== HTTP 客户端 ====================

// envelope 后端统一响应包
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client 表单后端客户端
type Client struct {
	http *resty.Client
}

// NewClient 创建客户端
// token 为空表示未登录，只能访问公开接口
func NewClient(baseURL, token string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "Hyrstacken-Form/1.0")

	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{http: client}
}

// FetchSession 获取当前会话身份 (归属守卫用，每次挂载只调一次)
func (c *Client) FetchSession(ctx context.Context) (*Session, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/auth/session")
	if err != nil {
		return nil, fmt.Errorf("会话请求失败: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("会话接口异常 [%d]", resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("会话响应解析失败: %w", err)
	}
	var session Session
	if err := json.Unmarshal(env.Data, &session); err != nil {
		return nil, fmt.Errorf("会话响应解析失败: %w", err)
	}
	return &session, nil
}

// FetchItemFormPage 获取表单页预取数据 (分类+城区)
func (c *Client) FetchItemFormPage(ctx context.Context) (*PageData, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/pages/item-form")
	if err != nil {
		return nil, fmt.Errorf("页面数据请求失败: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("页面数据接口异常 [%d]", resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("页面数据解析失败: %w", err)
	}
	var page PageData
	if err := json.Unmarshal(env.Data, &page); err != nil {
		return nil, fmt.Errorf("页面数据解析失败: %w", err)
	}
	return &page, nil
}

// SubmitItem 提交物品表单
// 同一个提交操作按 existingID 是否为空选择 create / update，
// 不再维护两份几乎一样的请求代码
// 成功返回新建/更新后的物品 id；所有失败原因 (非 2xx、网络错误、
// 响应体解析失败) 统一折叠成 error，上层不再区分
func (c *Client) SubmitItem(ctx context.Context, payload map[string]any, existingID string) (string, error) {
	req := c.http.R().SetContext(ctx).SetBody(payload)

	var resp *resty.Response
	var err error
	if existingID != "" {
		payload["id"] = existingID
		resp, err = req.Put("/api/items/" + existingID)
	} else {
		resp, err = req.Post("/api/items")
	}

	if err != nil {
		return "", fmt.Errorf("提交请求失败: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("提交被拒绝 [%d]: %s", resp.StatusCode(), resp.String())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return "", fmt.Errorf("提交响应解析失败: %w", err)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
		return "", fmt.Errorf("提交响应缺少 id")
	}
	return created.ID, nil
}
