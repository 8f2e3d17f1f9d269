package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host        string `envconfig:"HOST"`
	Port        string `envconfig:"PORT"`
	Prefix      string `envconfig:"PREFIX"`
	Mode        Mode   `envconfig:"MODE"`
	Database    Database
	Storage     Storage
	JWT         JWT
	Log         Log         `mapstructure:"log"`
	Redis       Redis       `mapstructure:"redis"`
	S3          S3          `mapstructure:"s3"`
	ActivityLog ActivityLog `mapstructure:"activity_log"`
	Notify      Notify      `mapstructure:"notify"`
}

// Database 数据库配置
// Driver 为 sqlite 时仅 Path 生效，为 mysql 时使用其余连接参数
type Database struct {
	Driver   string `envconfig:"DRIVER" mapstructure:"driver"`
	Path     string `envconfig:"PATH" mapstructure:"path"`
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME" mapstructure:"db_name"`
}

// Storage 文件存储配置，Backend ∈ {local, s3}，部署时选定一次
type Storage struct {
	Backend string `envconfig:"BACKEND" mapstructure:"backend"`
	Home    string `envconfig:"HOME" mapstructure:"home"`
	BaseURL string `envconfig:"BASE_URL" mapstructure:"base_url"`
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style"`
}

type Redis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET" mapstructure:"access_secret"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE" mapstructure:"access_expire"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

// ActivityLog 活动日志配置
// Store ∈ {file, redis}，决定日志缓冲区的持久化后端
type ActivityLog struct {
	MaxEntries int    `envconfig:"MAX_ENTRIES" mapstructure:"max_entries"` // 最大保留条数，超出后淘汰最旧的
	Store      string `envconfig:"STORE" mapstructure:"store"`
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`
	RedisKey   string `envconfig:"REDIS_KEY" mapstructure:"redis_key"`
}

// Notify 状态变更通知配置，WebhookURL 为空则不发送通知
type Notify struct {
	WebhookURL string `envconfig:"WEBHOOK_URL" mapstructure:"webhook_url"`
}
