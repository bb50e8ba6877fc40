package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvKey         = "ENV"
	EnvPrefix      = "RESTURIHUB"
	DBPasswordEnv  = "DB_PASSWORD"
	DefaultEnv     = "local"
	DefaultConfDir = "config"
)

type App struct {
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Cors     Cors     `json:"cors" yaml:"cors" mapstructure:"cors"`
	Log      Log      `json:"log" yaml:"log" mapstructure:"log"`
	Database Database `json:"database" yaml:"database" mapstructure:"database"`
	Health   Health   `json:"health" yaml:"health" mapstructure:"health"`
}

type Server struct {
	Host            string        `json:"host" yaml:"host" mapstructure:"host"`
	Port            string        `json:"port" yaml:"port" mapstructure:"port"`
	Mode            string        `json:"mode" yaml:"mode" mapstructure:"mode"`
	Title           string        `json:"title" yaml:"title" mapstructure:"title"`
	Description     string        `json:"description" yaml:"description" mapstructure:"description"`
	Version         string        `json:"version" yaml:"version" mapstructure:"version"`
	MetricsAddr     string        `json:"metricsAddr" yaml:"metricsAddr" mapstructure:"metricsAddr"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

// Addr 服务监听地址
func (s Server) Addr() string {
	return s.Host + ":" + s.Port
}

func (s Server) IsDebug() bool {
	return s.Mode == "debug"
}

type Cors struct {
	AllowOrigins     []string `json:"allowOrigins" yaml:"allowOrigins" mapstructure:"allowOrigins"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials" mapstructure:"allowCredentials"`
	AllowMethods     []string `json:"allowMethods" yaml:"allowMethods" mapstructure:"allowMethods"`
	AllowHeaders     []string `json:"allowHeaders" yaml:"allowHeaders" mapstructure:"allowHeaders"`
}

type Log struct {
	Level       string `json:"level" yaml:"level" mapstructure:"level"`
	Encoding    string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`
	Mode        string `json:"mode" yaml:"mode" mapstructure:"mode"`
	Path        string `json:"path" yaml:"path" mapstructure:"path"`
	ServiceName string `json:"serviceName" yaml:"serviceName" mapstructure:"serviceName"`
}

type Database struct {
	Driver          string        `json:"driver" yaml:"driver" mapstructure:"driver"`
	Host            string        `json:"host" yaml:"host" mapstructure:"host"`
	Port            string        `json:"port" yaml:"port" mapstructure:"port"`
	User            string        `json:"user" yaml:"user" mapstructure:"user"`
	Pass            string        `json:"pass" yaml:"pass" mapstructure:"pass"`
	DBName          string        `json:"dbName" yaml:"dbName" mapstructure:"dbName"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode" mapstructure:"sslMode"`
	Timeout         string        `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	PoolSize        int           `json:"poolSize" yaml:"poolSize" mapstructure:"poolSize"`
	MaxOverflow     int           `json:"maxOverflow" yaml:"maxOverflow" mapstructure:"maxOverflow"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime" mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `json:"connMaxIdleTime" yaml:"connMaxIdleTime" mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `json:"queryTimeout" yaml:"queryTimeout" mapstructure:"queryTimeout"`
	SlowThreshold   time.Duration `json:"slowThreshold" yaml:"slowThreshold" mapstructure:"slowThreshold"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate" mapstructure:"autoMigrate"`
}

type Health struct {
	PingSpec string `json:"pingSpec" yaml:"pingSpec" mapstructure:"pingSpec"`
}

// InitConfig 加载配置，失败时直接退出；path 为空时按环境选择配置文件
func InitConfig(path string) App {
	c, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %s\n", err.Error())
		os.Exit(1)
	}
	return c
}

// Load 读取配置文件与环境变量
// path 为空时按 ENV 选择 config/config.yaml 或 config/config.{env}.yaml
func Load(path string) (App, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = ResolvePath(DefaultConfDir, os.Getenv(EnvKey))
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c App
	err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}

	if pass := os.Getenv(DBPasswordEnv); pass != "" {
		c.Database.Pass = pass
	}

	return c, nil
}

// ResolvePath 按环境名选择配置文件，环境文件不存在时回退到 config.yaml；都不存在返回空
func ResolvePath(dir, env string) string {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		env = DefaultEnv
	}

	base := filepath.Join(dir, "config.yaml")
	if env != DefaultEnv {
		p := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))
		if fileExists(p) {
			return p
		}
	}
	if fileExists(base) {
		return base
	}
	return ""
}

// Masked 返回密码脱敏后的副本
func (a App) Masked() App {
	if a.Database.Pass != "" {
		a.Database.Pass = strings.Repeat("*", len(a.Database.Pass))
	}
	return a
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.title", "REST URI Hub")
	v.SetDefault("server.description", "REST API URI definition service")
	v.SetDefault("server.version", "0.0.1")
	v.SetDefault("server.metricsAddr", "127.0.0.1:9100")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.allowMethods", []string{"*"})
	v.SetDefault("cors.allowHeaders", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "plain")
	v.SetDefault("log.mode", "console")
	v.SetDefault("log.path", "logs")
	v.SetDefault("log.serviceName", "restUriHub")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.pass", "")
	v.SetDefault("database.sslMode", "")
	v.SetDefault("database.dbName", "myapp")
	v.SetDefault("database.timeout", "10s")
	v.SetDefault("database.poolSize", 10)
	v.SetDefault("database.maxOverflow", 20)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "5m")
	v.SetDefault("database.queryTimeout", "60s")
	v.SetDefault("database.slowThreshold", "200ms")
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("health.pingSpec", "@every 30s")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
