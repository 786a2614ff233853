package form

import (
	"context"
	"errors"

	"hyrstacken_api/internal/schema"
)

// ==================== 表单状态 ====================

// State 表单的四个互斥终态
type State int

const (
	StateEditing   State = iota // 可交互编辑 (默认)
	StateLoading                // 提交进行中 / 已提交成功等待跳转
	StateError                  // 上次提交失败
	StateForbidden              // 未登录，或编辑他人物品
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateForbidden:
		return "forbidden"
	default:
		return "editing"
	}
}

var (
	ErrNotEditing = errors.New("表单当前不可提交")
	ErrValidation = errors.New("存在未通过校验的字段")
)

// ==================== 配置与已有物品 ====================

// ExistingItem 编辑模式下传入的已有物品
type ExistingItem struct {
	ID          string
	Title       string
	Description string
	PricePerDay float64
	ImageURL    string
	CategoryID  string
	LocationID  string
	Owner       Owner
}

// Config 表单控制器依赖
// 会话是显式传入的依赖而不是环境全局量，方便单测
type Config struct {
	Client     *Client
	Session    *Session            // nil 表示未登录
	Categories []Ref               // 页面预取的参照数据
	Locations  []Ref
	Existing   *ExistingItem       // nil 表示新建
	Navigate   func(itemID string) // 提交成功后跳转物品详情
}

// ==================== 表单控制器 ====================

// Controller 物品表单控制器
// 字段每次变更即校验；提交被校验结果门禁；提交中/失败/无权限
// 三个状态互斥，渲染判定顺序固定为 Loading -> Error -> Forbidden -> Editing
type Controller struct {
	cfg   Config
	guard *Guard // 仅编辑模式持有

	values    map[string]any
	fieldErrs schema.FieldErrors

	submitting bool // 提交在途，单飞：置位后无法再触发第二次提交
	completed  bool // 已提交成功并跳转，不再回到编辑态
	failed     bool // 上次提交失败
}

// NewController 创建表单控制器并绑定初始字段值
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:    cfg,
		values: map[string]any{},
	}

	if cfg.Existing != nil {
		c.guard = NewGuard(cfg.Existing.Owner.ID)
		c.values["title"] = cfg.Existing.Title
		c.values["description"] = cfg.Existing.Description
		c.values["price"] = cfg.Existing.PricePerDay
		if cfg.Existing.ImageURL != "" {
			c.values["imageUrl"] = cfg.Existing.ImageURL
		}
		c.values["categoryId"] = cfg.Existing.CategoryID
		c.values["locationId"] = cfg.Existing.LocationID
	}

	c.revalidate()
	return c
}

// Mount 挂载副作用：编辑已有物品时解析一次会话身份
// 新建模式没有网络副作用
func (c *Controller) Mount(ctx context.Context) {
	if c.guard != nil {
		c.guard.Resolve(ctx, c.cfg.Client)
	}
}

// ==================== 字段操作 ====================

// SetField 修改单个字段并立即重新校验 (onChange 模式)
func (c *Controller) SetField(name string, value any) {
	c.values[name] = value
	c.revalidate()
}

// ResetField 清空单个字段
func (c *Controller) ResetField(name string) {
	delete(c.values, name)
	c.revalidate()
}

// Value 读取当前字段值
func (c *Controller) Value(name string) any {
	return c.values[name]
}

// FieldError 字段当前的校验文案，空串表示无违规
func (c *Controller) FieldError(name string) string {
	if fe, ok := c.fieldErrs[name]; ok {
		return fe.Message
	}
	return ""
}

// Valid 所有字段约束是否全部通过
func (c *Controller) Valid() bool {
	return len(c.fieldErrs) == 0
}

func (c *Controller) revalidate() {
	_, errs := schema.ValidateItem(c.values)
	c.fieldErrs = errs
}

// ==================== 状态机 ====================

// State 当前渲染状态，按固定优先级推导
func (c *Controller) State() State {
	// 提交在途或已成功跳转都渲染加载态，成功后不回编辑态
	if c.submitting || c.completed {
		return StateLoading
	}
	if c.failed {
		return StateError
	}
	// 派生判定：未登录，或编辑他人物品
	// 守卫未决 (Pending) 不等于拒绝，此时仍渲染编辑态
	if c.cfg.Session == nil {
		return StateForbidden
	}
	if c.guard != nil && c.guard.Decision() == DecisionDenied {
		return StateForbidden
	}
	return StateEditing
}

// CanSubmit 提交按钮是否可用：处于编辑态且全部约束通过
func (c *Controller) CanSubmit() bool {
	return c.State() == StateEditing && c.Valid()
}

// Submit 触发提交
// 校验不过或不在编辑态时直接拒绝；成功后跳转返回的物品详情
func (c *Controller) Submit(ctx context.Context) error {
	if c.State() != StateEditing {
		return ErrNotEditing
	}

	in, errs := schema.ValidateItem(c.values)
	if errs != nil {
		c.fieldErrs = errs
		return ErrValidation
	}

	var existingID string
	if c.cfg.Existing != nil {
		existingID = c.cfg.Existing.ID
	}

	c.submitting = true
	id, err := c.cfg.Client.SubmitItem(ctx, in.Payload(), existingID)
	c.submitting = false

	if err != nil {
		// 所有失败原因折叠成同一个错误态，字段值原样保留
		c.failed = true
		return err
	}

	c.completed = true
	if c.cfg.Navigate != nil {
		c.cfg.Navigate(id)
	}
	return nil
}

// DismissError 用户关掉错误提示：只清标志，不自动重提
func (c *Controller) DismissError() {
	c.failed = false
}

// ==================== 只读视图 ====================

// Categories 表单可选分类
func (c *Controller) Categories() []Ref {
	return c.cfg.Categories
}

// Locations 表单可选城区
func (c *Controller) Locations() []Ref {
	return c.cfg.Locations
}

// Editing 是否为编辑已有物品模式
func (c *Controller) Editing() bool {
	return c.cfg.Existing != nil
}
