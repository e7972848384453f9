package conf

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DataConfig 模拟数据生成参数
type DataConfig struct {
	RunCount    int `mapstructure:"run_count"`     // 每次请求生成的运行记录条数
	MaxAgeHours int `mapstructure:"max_age_hours"` // 开始时间最多往前推多少小时
}

const (
	DefaultRunCount    = 50
	DefaultMaxAgeHours = 72
)

// LoadConfig 加载配置
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv() // 自动读取环境变量

	// 允许环境变量替换 YAML 中的 ${VAR}
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	// 显式展开环境变量
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.Contains(val, "${") {
			v.Set(key, os.ExpandEnv(val))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Data.RunCount <= 0 {
		c.Data.RunCount = DefaultRunCount
	}
	if c.Data.MaxAgeHours <= 0 {
		c.Data.MaxAgeHours = DefaultMaxAgeHours
	}
	return &c, nil
}
