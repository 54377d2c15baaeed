package services

import (
	"context"
)

// Store 通用键值存储接口。值是完整的JSON文档，由上层负责编解码。
// 列表操作依赖前缀扫描，返回顺序由具体后端决定，调用方不应假设稳定排序
type Store interface {
	// Get 精确查找，键不存在时返回 (nil, nil) 而不是错误
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 无条件覆盖写入
	Set(ctx context.Context, key string, value []byte) error
	// Del 删除单个键，键不存在时不报错
	Del(ctx context.Context, key string) error
	// MDel 批量删除，用于级联清理
	MDel(ctx context.Context, keys []string) error
	// GetByPrefix 返回所有键以prefix开头的值
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
