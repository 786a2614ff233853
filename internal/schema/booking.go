package schema

import "time"

// ==================== 预订约束 ====================

const (
	msgStartBeforeToday = "Startdatum får inte vara före idag."
	msgEndBeforeToday   = "Slutdatum får inte vara före idag."
	msgItemMissing      = "Ogiltigt objekt."
	msgBadStatus        = "Ogiltig bokningsstatus."
	msgBadDate          = "Ogiltigt datum."
)

// bookingStatuses 合法状态枚举，与 model.BookingStatus 保持一致
var bookingStatuses = map[string]struct{}{
	"pending": {}, "accepted": {}, "declined": {},
	"expired": {}, "cancelled": {}, "done": {},
}

// BookingInput 通过校验后的预订请求
type BookingInput struct {
	ItemID    string    `json:"itemId"`
	RenterID  string    `json:"renterId,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status,omitempty"`
}

// ValidateBooking 校验预订表单
// 日期接受 RFC3339 或 2006-01-02，起止日期都不能早于今天 (按本地日历日比较)
func ValidateBooking(raw map[string]any) (*BookingInput, FieldErrors) {
	errs := FieldErrors{}
	in := &BookingInput{}

	today := truncateToDay(time.Now())

	if start, ok := parseDate(raw["startDate"]); !ok {
		errs["startDate"] = FieldError{RuleNotANumber, msgBadDate}
	} else if start.Before(today) {
		errs["startDate"] = FieldError{RuleBelowMinimum, msgStartBeforeToday}
	} else {
		in.StartDate = start
	}

	if end, ok := parseDate(raw["endDate"]); !ok {
		errs["endDate"] = FieldError{RuleNotANumber, msgBadDate}
	} else if end.Before(today) {
		errs["endDate"] = FieldError{RuleBelowMinimum, msgEndBeforeToday}
	} else {
		in.EndDate = end
	}

	if item, _ := stringField(raw, "itemId"); isBlank(item) {
		errs["itemId"] = FieldError{RuleEmpty, msgItemMissing}
	} else {
		in.ItemID = item
	}

	// renterId 可选透传，服务端会以会话身份覆盖
	if renter, ok := stringField(raw, "renterId"); ok {
		in.RenterID = renter
	}

	// status 可选，有值时必须在枚举内
	if status, ok := stringField(raw, "status"); ok && status != "" {
		if _, valid := bookingStatuses[status]; !valid {
			errs["status"] = FieldError{RuleInvalid, msgBadStatus}
		} else {
			in.Status = status
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// parseDate 接受 time.Time、RFC3339 字符串或 2006-01-02 字符串
func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
