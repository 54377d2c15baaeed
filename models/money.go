package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rizwanuh/GovtProjectManager/utils"
)

// Money 预算金额。正常情况下前端提交数值，但历史表单会提交
// "$50,000" 这样的字符串，这里统一解析成数值后再落库
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		raw, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("无法解析预算字符串: %v", err)
		}
		*m = Money(utils.ParseBudget(raw))
		return nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("无法解析预算数值: %v", err)
	}
	*m = Money(value)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m), 'f', -1, 64)), nil
}
