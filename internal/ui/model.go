// 包 ui：基于 bubbletea 的终端展示层；卡片列表、详情面板与两个过滤输入框
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"region-explorer/internal/explorer"
)

type screen int

const (
	screenCards screen = iota
	screenDetail
)

type detailState int

const (
	detailLoading detailState = iota
	detailReady
	detailFailed
)

// Options：展示层依赖项
type Options struct {
	Formatter *explorer.Formatter
	ImageBase string
	Timeout   time.Duration
}

// Model：顶层控制器；持有区域目录（唯一数据源）与当前详情面板
// 约束：所有字段只在 Update 中修改；网络请求通过 tea.Cmd 在后台执行并以消息回送
type Model struct {
	source    explorer.Source
	format    *explorer.Formatter
	imageBase string
	timeout   time.Duration
	keys      keyMap

	Screen screen
	Width  int
	Height int
	Quit   bool

	// 卡片页
	Catalog      *explorer.Catalog
	Cards        explorer.CardGrid
	CardsLoading bool
	CardsErr     error
	CardCursor   int
	Search       textinput.Model

	// 详情页
	selector    explorer.Selector
	Panel       *explorer.Panel
	DetailState detailState
	DetailErr   error
	EntryCursor int
	SubFilter   textinput.Model
}

// New：构建初始模型；区域列表在 Init 中加载
func New(src explorer.Source, opts Options) *Model {
	if opts.Formatter == nil {
		opts.Formatter = explorer.NewFormatter("en")
	}
	if opts.ImageBase == "" {
		opts.ImageBase = explorer.DefaultImageBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}

	search := textinput.New()
	search.Placeholder = "Search departments..."
	search.Prompt = "🔍 "
	search.CharLimit = 100

	sub := textinput.New()
	sub.Placeholder = "Filter municipalities..."
	sub.Prompt = "› "
	sub.CharLimit = 100

	return &Model{
		source:       src,
		format:       opts.Formatter,
		imageBase:    opts.ImageBase,
		timeout:      opts.Timeout,
		keys:         defaultKeys,
		Screen:       screenCards,
		CardsLoading: true,
		Search:       search,
		SubFilter:    sub,
	}
}

// refreshCards：按当前搜索词从完整目录重新投影卡片
func (m *Model) refreshCards() {
	if m.Catalog == nil {
		return
	}
	m.Cards = explorer.RenderCards(m.Catalog.Filter(m.Search.Value()), m.imageBase)
	m.CardCursor = clamp(m.CardCursor, len(m.Cards.Cards))
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
