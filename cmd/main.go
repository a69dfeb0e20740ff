// 程序入口：读取配置、初始化日志与上游客户端，然后启动交互界面或一次性打印卡片
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"region-explorer/internal/apicolombia"
	"region-explorer/internal/config"
	"region-explorer/internal/explorer"
	"region-explorer/internal/logger"
	"region-explorer/internal/metrics"
	"region-explorer/internal/ui"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "region-explorer:", err)
		os.Exit(2)
	}

	// 交互界面占用终端，日志改写到文件
	l := logger.Setup()
	if !cfg.Print {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			l.Warn("log_file_open_error", "path", cfg.LogFile, "err", err)
			l = logger.SetupTo(io.Discard)
		} else {
			defer f.Close()
			l = logger.SetupTo(f)
		}
	}
	l.Debug("log_init_ok")
	l.Debug("config_loaded", "api", cfg.APIBase, "timeout", cfg.Timeout, "locale", cfg.Locale, "print", cfg.Print)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		s := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			l.Info("metrics_listen", "addr", cfg.MetricsAddr)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Error("metrics_listen_error", "err", err)
			}
		}()
		defer s.Close()
	}

	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: logger.Transport(l, http.DefaultTransport),
	}
	client := apicolombia.New(cfg.APIBase, hc)
	format := explorer.NewFormatter(cfg.Locale)

	if cfg.Print {
		if err := runPrint(client, cfg); err != nil {
			l.Error("print_error", "err", err)
			fmt.Fprintln(os.Stderr, explorer.LoadErrorMessage)
			os.Exit(1)
		}
		return
	}

	m := ui.New(client, ui.Options{Formatter: format, ImageBase: cfg.ImageBase, Timeout: cfg.Timeout})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		l.Error("ui_error", "err", err)
		fmt.Fprintln(os.Stderr, "region-explorer:", err)
		os.Exit(1)
	}
	l.Info("exit_ok")
}

// runPrint：加载区域目录、按 --query 过滤后输出卡片
func runPrint(src explorer.Source, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	c, err := explorer.LoadCatalog(ctx, src)
	if err != nil {
		return err
	}
	grid := explorer.RenderCards(c.Filter(cfg.Query), cfg.ImageBase)
	fmt.Print(ui.PlainCards(grid, 0))
	return nil
}
