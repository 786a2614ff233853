// Package schema 物品/资料/预订表单的纯校验规则。
// 对应前端和后端共用的一套字段约束：输入是未定型的 map (前端表单原样提交)，
// 输出要么是归一化后的安全值，要么是 字段名 -> 第一条违规 的映射。
// 校验本身无副作用，重复校验同一份归一化结果得到相同输出。
package schema

import (
	"strings"
	"unicode/utf8"
)

// ==================== 规则类型 ====================

// Rule 被违反的规则种类
type Rule string

const (
	RuleMissing      Rule = "Missing"      // 必填字段缺失
	RuleTooShort     Rule = "TooShort"     // 字符数不足
	RuleTooLong      Rule = "TooLong"      // 字符数超限
	RuleNotANumber   Rule = "NotANumber"   // 数值转换失败
	RuleBelowMinimum Rule = "BelowMinimum" // 低于下限
	RuleAboveMaximum Rule = "AboveMaximum" // 高于上限
	RuleEmpty        Rule = "Empty"        // 必选引用为空
	RuleInvalid      Rule = "Invalid"      // 枚举/格式非法
)

// ==================== 错误结构 ====================

// FieldError 单个字段的校验结果，文案直接面向用户展示
type FieldError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors 字段名 -> 第一条违规。每个字段只保留最先命中的一条规则，
// 不做同字段多条聚合
type FieldErrors map[string]FieldError

// Messages 只取文案部分，HTTP 400 响应体用
func (e FieldErrors) Messages() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for field, fe := range e {
		out[field] = fe.Message
	}
	return out
}

// ==================== 取值辅助 ====================

// stringField 从原始 map 中取字符串字段
// 返回 (值, 字段是否存在且为字符串)
func stringField(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// runeLen 按字符 (rune) 计数，瑞典语的 å/ä/ö 不能按字节算
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// isBlank 空串或纯空白
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
