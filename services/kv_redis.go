package services

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/rizwanuh/GovtProjectManager/config"
)

// RedisStore 基于Redis的键值存储，前缀扫描通过 SCAN MATCH 实现
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 初始化Redis存储并测试连接
func NewRedisStore(conf config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.GetRedisConnString(),
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})

	// 测试连接
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("Redis连接测试失败: %v", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) MDel(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	raw, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		// 扫描和读取之间被删除的键会返回nil，直接跳过
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok {
			values = append(values, []byte(str))
		}
	}
	return values, nil
}

// Close 关闭Redis连接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
