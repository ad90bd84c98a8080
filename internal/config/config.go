package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultBaseURL        = "https://nowaunoweb.azurewebsites.net"
	defaultRequestTimeout = 10   // 单次请求超时（秒）
	defaultDealDelay      = 2500 // 发牌动画时长（毫秒）
	defaultNoticeTimeout  = 3    // 提示横幅停留时长（秒）
)

// defaultNames 姓名输入留空时的兜底玩家名
var defaultNames = []string{"Player 1", "Player 2", "Player 3", "Player 4"}

// Config 客户端配置
type Config struct {
	Authority AuthorityConfig `yaml:"authority"`
	Game      GameConfig      `yaml:"game"`
	Sound     SoundConfig     `yaml:"sound"`
}

// AuthorityConfig 远端规则服务器配置
type AuthorityConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 请求超时（秒）
}

// GameConfig 游戏表现配置
type GameConfig struct {
	DefaultNames  []string `yaml:"default_names"`
	DealDelay     int      `yaml:"deal_delay"`     // 发牌动画时长（毫秒），纯装饰
	NoticeTimeout int      `yaml:"notice_timeout"` // 提示横幅停留时长（秒）
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled  bool   `yaml:"enabled"`
	AssetDir string `yaml:"asset_dir"`
}

// TimeoutDuration 返回请求超时时长
func (c *AuthorityConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DealDelayDuration 返回发牌动画时长
func (c *GameConfig) DealDelayDuration() time.Duration {
	return time.Duration(c.DealDelay) * time.Millisecond
}

// NoticeTimeoutDuration 返回提示横幅停留时长
func (c *GameConfig) NoticeTimeoutDuration() time.Duration {
	return time.Duration(c.NoticeTimeout) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg
}

// applyDefaults 填充零值字段
func applyDefaults(cfg *Config) {
	if cfg.Authority.BaseURL == "" {
		cfg.Authority.BaseURL = defaultBaseURL
	}
	if cfg.Authority.Timeout == 0 {
		cfg.Authority.Timeout = defaultRequestTimeout
	}
	if len(cfg.Game.DefaultNames) == 0 {
		cfg.Game.DefaultNames = append([]string(nil), defaultNames...)
	}
	if cfg.Game.DealDelay == 0 {
		cfg.Game.DealDelay = defaultDealDelay
	}
	if cfg.Game.NoticeTimeout == 0 {
		cfg.Game.NoticeTimeout = defaultNoticeTimeout
	}
	if cfg.Sound.AssetDir == "" {
		cfg.Sound.AssetDir = "assets/sounds"
	}
}

// applyEnv 环境变量覆盖，便于不改文件切换服务器
func applyEnv(cfg *Config) {
	if v := os.Getenv("UNO_AUTHORITY_URL"); v != "" {
		cfg.Authority.BaseURL = v
	}
	if v := os.Getenv("UNO_AUTHORITY_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Authority.Timeout = n
		}
	}
	if v := os.Getenv("UNO_DEFAULT_NAMES"); v != "" {
		cfg.Game.DefaultNames = strings.Split(v, ",")
	}
}
