package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/rizwanuh/GovtProjectManager/config"
)

// KVRecord kv_store表结构，与托管端的键值表保持一致
type KVRecord struct {
	Key   string `gorm:"column:key;primaryKey;type:text"`
	Value []byte `gorm:"column:value;type:jsonb"`
}

func (KVRecord) TableName() string {
	return "kv_store"
}

// PostgresStore 基于Postgres单表的键值存储，前缀扫描通过 LIKE 'prefix%' 实现
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore 初始化数据库连接并迁移键值表
func NewPostgresStore(conf config.Config) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(conf.GetDBConnString()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec KVRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	rec := KVRecord{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *PostgresStore) Del(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVRecord{}, "key = ?", key).Error
}

func (s *PostgresStore) MDel(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&KVRecord{}, "key IN ?", keys).Error
}

func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var recs []KVRecord
	if err := s.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Find(&recs).Error; err != nil {
		return nil, err
	}

	values := make([][]byte, 0, len(recs))
	for _, rec := range recs {
		values = append(values, rec.Value)
	}
	return values, nil
}
