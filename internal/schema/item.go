package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ==================== 物品字段约束 ====================

const (
	ItemTitleMin       = 2
	ItemTitleMax       = 50
	ItemDescriptionMin = 3
	ItemDescriptionMax = 250
	ItemPriceMin       = 0
	ItemPriceMax       = 100000
)

// 用户文案 (瑞典语，产品侧要求原样保留)
const (
	msgTitleMissing  = "Titel måste anges."
	msgTitleTooShort = "Titel måste vara minst 2 tecken."
	msgTitleTooLong  = "Titel får inte vara mer än 50 tecken."
	msgPriceNaN      = "Pris måste vara ett nummer. Sätt 0 för gratis."
	msgPriceTooLow   = "Pris måste vara ifyllt."
	msgPriceTooHigh  = "Lycka till att få denna uthyrd. Maxpris är 100 000."
	msgDescTooShort  = "Beskrivning måste vara mer än 3 tecken."
	msgDescTooLong   = "Beskrivning får inte vara mer än 250 tecken."
	msgCategoryEmpty = "Kategori måste väljas."
	msgLocationEmpty = "En stadsdel måste väljas."
)

// ==================== 归一化结果 ====================

// ItemInput 通过校验后的安全结果，可直接提交/落库
type ItemInput struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CategoryID  string  `json:"categoryId"`
	LocationID  string  `json:"locationId"`
	OwnerID     string  `json:"ownerId,omitempty"`
}

// Payload 还原成提交用的 map，形状与原始表单一致
func (in *ItemInput) Payload() map[string]any {
	p := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"price":       in.PricePerDay,
		"categoryId":  in.CategoryID,
		"locationId":  in.LocationID,
	}
	if in.ImageURL != "" {
		p["imageUrl"] = in.ImageURL
	}
	if in.ID != "" {
		p["id"] = in.ID
	}
	if in.OwnerID != "" {
		p["ownerId"] = in.OwnerID
	}
	return p
}

// ==================== 物品校验 ====================

// ValidateItem 校验一条物品数据
// raw 是未定型的 key-value (表单 JSON 原样解出来的 map)
// 全部通过时返回归一化结果，否则返回 字段 -> 第一条违规
func ValidateItem(raw map[string]any) (*ItemInput, FieldErrors) {
	errs := FieldErrors{}
	in := &ItemInput{}

	// --- title: 必填，2-50 字符 ---
	if title, ok := stringField(raw, "title"); !ok {
		errs["title"] = FieldError{RuleMissing, msgTitleMissing}
	} else if runeLen(title) < ItemTitleMin {
		errs["title"] = FieldError{RuleTooShort, msgTitleTooShort}
	} else if runeLen(title) > ItemTitleMax {
		errs["title"] = FieldError{RuleTooLong, msgTitleTooLong}
	} else {
		in.Title = title
	}

	// --- price: 数值，0-100000，缺省为 0 ---
	if v, ok := raw["price"]; ok && v != nil {
		price, numeric := coerceNumber(v)
		switch {
		case !numeric:
			errs["price"] = FieldError{RuleNotANumber, msgPriceNaN}
		case price < ItemPriceMin:
			errs["price"] = FieldError{RuleBelowMinimum, msgPriceTooLow}
		case price > ItemPriceMax:
			errs["price"] = FieldError{RuleAboveMaximum, msgPriceTooHigh}
		default:
			in.PricePerDay = price
		}
	}

	// --- description: 3-250 字符，缺失按空串算 ---
	desc, _ := stringField(raw, "description")
	if runeLen(desc) < ItemDescriptionMin {
		errs["description"] = FieldError{RuleTooShort, msgDescTooShort}
	} else if runeLen(desc) > ItemDescriptionMax {
		errs["description"] = FieldError{RuleTooLong, msgDescTooLong}
	} else {
		in.Description = desc
	}

	// --- imageUrl: 可选，不做格式约束 ---
	if img, ok := stringField(raw, "imageUrl"); ok {
		in.ImageURL = img
	}

	// --- categoryId / locationId: 必选引用，存在性由后端校验 ---
	if cat, _ := stringField(raw, "categoryId"); isBlank(cat) {
		errs["categoryId"] = FieldError{RuleEmpty, msgCategoryEmpty}
	} else {
		in.CategoryID = cat
	}
	if loc, _ := stringField(raw, "locationId"); isBlank(loc) {
		errs["locationId"] = FieldError{RuleEmpty, msgLocationEmpty}
	} else {
		in.LocationID = loc
	}

	// --- id / ownerId: 可选透传，不校验 ---
	if id, ok := stringField(raw, "id"); ok {
		in.ID = id
	}
	if owner, ok := stringField(raw, "ownerId"); ok {
		in.OwnerID = owner
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// coerceNumber 把任意输入尽量转成 float64
// 表单里数字往往以字符串提交，JSON 解码也可能给出 json.Number
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
