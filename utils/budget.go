package utils

import (
	"strconv"
	"strings"
)

// ParseBudget 从预算字符串中提取数值，例如 "$50,000" -> 50000。
// 解析失败时返回0
func ParseBudget(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
