// 包 config：集中读取环境变量与命令行参数，输出经过校验的运行配置
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	DefaultAPIBase   = "https://api-colombia.com/api/v1"
	DefaultTimeout   = 8 * time.Second
	DefaultLocale    = "en"
	DefaultImageBase = "images/departments"
	DefaultLogFile   = "region-explorer.log"
)

// Config：运行配置
// 约束：命令行参数优先于环境变量，环境变量优先于默认值
type Config struct {
	APIBase     string
	Timeout     time.Duration
	Locale      string
	ImageBase   string
	LogFile     string
	MetricsAddr string
	Print       bool
	Query       string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load：从环境变量与 args（不含程序名）构建配置
// 异常：HTTP_TIMEOUT 解析失败、参数非法或 API 地址非 http(s) 时返回错误；--help 返回 pflag.ErrHelp
func Load(args []string) (Config, error) {
	cfg := Config{
		APIBase:     getenv("API_BASE_URL", DefaultAPIBase),
		Timeout:     DefaultTimeout,
		Locale:      getenv("LOCALE", DefaultLocale),
		ImageBase:   getenv("IMAGE_BASE", DefaultImageBase),
		LogFile:     getenv("LOG_FILE", DefaultLogFile),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	fs := pflag.NewFlagSet("region-explorer", pflag.ContinueOnError)
	fs.StringVar(&cfg.APIBase, "api", cfg.APIBase, "upstream API base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request HTTP timeout")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used for number grouping (BCP 47)")
	fs.StringVar(&cfg.ImageBase, "image-base", cfg.ImageBase, "directory holding per-region card images")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log destination while the interactive view is running")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve prometheus metrics on this address")
	fs.BoolVar(&cfg.Print, "print", false, "print the region cards and exit")
	fs.StringVarP(&cfg.Query, "query", "q", "", "region name filter used with --print")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	cfg.ImageBase = strings.TrimRight(cfg.ImageBase, "/")
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("api base: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base %q: want an absolute http(s) URL", c.APIBase)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Query != "" && !c.Print {
		return errors.New("--query requires --print")
	}
	return nil
}
