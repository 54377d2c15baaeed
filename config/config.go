package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// API路径前缀（与前端约定的固定前缀，不能随意修改）
	APIBasePath string `mapstructure:"API_BASE_PATH"`

	// KV存储后端: redis 或 postgres
	KVBackend string `mapstructure:"KV_BACKEND"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// 数据库配置（postgres后端，键值表与身份服务共用同一个库）
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// 身份服务配置
	AuthURL            string `mapstructure:"AUTH_URL"`
	AuthServiceRoleKey string `mapstructure:"AUTH_SERVICE_ROLE_KEY"`
	AuthAnonKey        string `mapstructure:"AUTH_ANON_KEY"`
	AuthJWTSecret      string `mapstructure:"AUTH_JWT_SECRET"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("API_BASE_PATH", "/make-server-d22d6276")
	v.SetDefault("KV_BACKEND", "redis")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
