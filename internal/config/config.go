package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	MySQL  MySQLConfig
	JWT    JWTConfig
	MinIO  MinIOConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MySQLConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Enabled bool
}

var (
	configInstance *Config
	once           sync.Once
)

// LoadConfig reads configuration from environment variables with defaults
// suitable for local development.
func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("TALLY_HOST", "")
		viper.SetDefault("TALLY_PORT", "8080")
		viper.SetDefault("TALLY_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("TALLY_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("TALLY_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("TALLY_JWT_SECRET", "secret")
		viper.SetDefault("TALLY_JWT_EXPIRE", "24h")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "tally")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
		viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
		viper.SetDefault("MINIO_BUCKET", "tally-attachments")
		viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
		viper.SetDefault("KAFKA_TOPIC", "tally-events")
		viper.SetDefault("KAFKA_GROUP_ID", "tally-service")
		viper.SetDefault("KAFKA_ENABLED", true)
		viper.AutomaticEnv()

		jwtExpire, err := time.ParseDuration(viper.GetString("TALLY_JWT_EXPIRE"))
		if err != nil {
			jwtExpire = 24 * time.Hour
		}

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("TALLY_HOST"),
				Port:         viper.GetString("TALLY_PORT"),
				ReadTimeout:  viper.GetDuration("TALLY_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("TALLY_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("TALLY_IDLE_TIMEOUT"),
			},
			MySQL: MySQLConfig{
				Host:     viper.GetString("MYSQL_HOST"),
				Port:     viper.GetString("MYSQL_PORT"),
				User:     viper.GetString("MYSQL_USER"),
				Password: viper.GetString("MYSQL_PASSWORD"),
				DBName:   viper.GetString("MYSQL_DB"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("TALLY_JWT_SECRET"),
				ExpirationTime: jwtExpire,
			},
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				Bucket:    viper.GetString("MINIO_BUCKET"),
			},
			Kafka: KafkaConfig{
				Brokers: strings.Split(viper.GetString("KAFKA_BROKERS"), ","),
				Topic:   viper.GetString("KAFKA_TOPIC"),
				GroupID: viper.GetString("KAFKA_GROUP_ID"),
				Enabled: viper.GetBool("KAFKA_ENABLED"),
			},
		}
	})
	return configInstance, nil
}
