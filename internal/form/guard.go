package form

import (
	"context"
	"log"
)

// ==================== 归属守卫 ====================

// Decision 守卫的三态判定
// 身份请求未返回之前是 Pending：既不放行也不拒绝
type Decision int

const (
	DecisionPending Decision = iota // 身份尚未解析，判定无意义
	DecisionGranted                 // 当前用户就是物主
	DecisionDenied                  // 当前用户不是物主
)

// Guard 编辑归属守卫
// 挂载时发一次会话身份请求，拿到 viewerID 之后才能给出判定
type Guard struct {
	ownerID  string
	viewerID string
	resolved bool
}

// NewGuard 创建守卫，ownerID 来自物品记录
func NewGuard(ownerID string) *Guard {
	return &Guard{ownerID: ownerID}
}

// Resolve 解析当前会话身份，每次挂载调用一次
// 请求失败只记日志，守卫留在未决态；绝不把失败当成放行
func (g *Guard) Resolve(ctx context.Context, client *Client) {
	session, err := client.FetchSession(ctx)
	if err != nil {
		log.Printf("[Form] 会话身份获取失败: %v", err)
		return
	}
	g.viewerID = session.ID
	g.resolved = true
}

// Decision 当前判定
func (g *Guard) Decision() Decision {
	if !g.resolved {
		return DecisionPending
	}
	if g.viewerID == g.ownerID {
		return DecisionGranted
	}
	return DecisionDenied
}

// Resolved 身份是否已解析
func (g *Guard) Resolved() bool {
	return g.resolved
}
