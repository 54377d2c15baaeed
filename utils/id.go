package utils

import (
	"github.com/google/uuid"
)

// GenerateID 生成记录的唯一标识
func GenerateID() string {
	return uuid.New().String()
}
