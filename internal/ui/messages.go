package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"region-explorer/internal/explorer"
)

// regionsLoadedMsg：启动时区域列表请求的结果
type regionsLoadedMsg struct {
	catalog *explorer.Catalog
	err     error
}

// detailLoadedMsg：一次选中的联合请求结果；token 用于丢弃过期响应
type detailLoadedMsg struct {
	token  uint64
	id     int
	detail explorer.Detail
	err    error
}

// subRegionLoadedMsg：城市详情结果；token 为发起请求时的面板令牌
type subRegionLoadedMsg struct {
	token  uint64
	id     int
	detail explorer.SubRegionDetail
	err    error
}

func loadRegionsCmd(src explorer.Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		c, err := explorer.LoadCatalog(ctx, src)
		return regionsLoadedMsg{catalog: c, err: err}
	}
}

func loadDetailCmd(src explorer.Source, timeout time.Duration, token uint64, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		d, err := explorer.LoadDetail(ctx, src, id)
		return detailLoadedMsg{token: token, id: id, detail: d, err: err}
	}
}

func loadSubRegionCmd(src explorer.Source, timeout time.Duration, token uint64, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		d, err := src.City(ctx, id)
		return subRegionLoadedMsg{token: token, id: id, detail: d, err: err}
	}
}
