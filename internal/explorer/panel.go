package explorer

import (
	"fmt"
	"strings"
)

// Status：单个城市条目的加载状态，与展开/折叠相互独立
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

const (
	SubRegionLoadingMessage = "Loading..."
	SubRegionErrorMessage   = "Error loading data."
)

// Entry：手风琴中的一个城市条目
type Entry struct {
	SubRegion SubRegion
	Expanded  bool
	Status    Status
	Detail    SubRegionDetail
	Hidden    bool
}

// Panel：一次选中渲染出的详情面板
// 约束：面板生命周期内每个条目至多一个在途或已完成的请求；失败状态允许下次展开时重试
type Panel struct {
	Token       uint64
	RegionID    int
	Title       string
	FlagURL     string
	Capital     string
	Population  string
	Description string

	entries []*Entry
	index   map[int]*Entry
	filter  string
	format  *Formatter
}

// NewPanel：由完整数据构建面板，所有条目初始为折叠、未加载
func NewPanel(d Detail, token uint64, f *Formatter) *Panel {
	if f == nil {
		f = NewFormatter("en")
	}
	capital := d.Region.CapitalName()
	if capital == "" {
		capital = NotAvailable
	}
	p := &Panel{
		Token:       token,
		RegionID:    d.Region.ID,
		Title:       d.Region.Name,
		FlagURL:     FlagURL,
		Capital:     capital,
		Population:  f.Population(d.Region.Population),
		Description: DescriptionText(d.Region.Description),
		entries:     make([]*Entry, 0, len(d.SubRegions)),
		index:       make(map[int]*Entry, len(d.SubRegions)),
		format:      f,
	}
	for _, s := range d.SubRegions {
		e := &Entry{SubRegion: s}
		p.entries = append(p.entries, e)
		if _, dup := p.index[s.ID]; !dup {
			p.index[s.ID] = e
		}
	}
	return p
}

// Count：下属城市数量（不受过滤影响）
func (p *Panel) Count() int { return len(p.entries) }

// Entries：全部条目，保持上游顺序
func (p *Panel) Entries() []*Entry { return p.entries }

// Entry：按城市 ID 查找条目
func (p *Panel) Entry(id int) (*Entry, bool) {
	e, ok := p.index[id]
	return e, ok
}

// 文档注释：切换条目展开状态
// 约束：其他已展开条目一律折叠但保留内容；仅在展开且状态为 Idle/Failed 时返回 true 并进入 Loading，调用方据此发起请求。
func (p *Panel) Toggle(id int) bool {
	target, ok := p.index[id]
	if !ok {
		return false
	}
	for _, e := range p.entries {
		if e != target {
			e.Expanded = false
		}
	}
	target.Expanded = !target.Expanded
	if !target.Expanded {
		return false
	}
	if target.Status == StatusIdle || target.Status == StatusFailed {
		target.Status = StatusLoading
		return true
	}
	return false
}

// Resolve：写入城市详情请求结果；条目不在 Loading 状态时忽略
func (p *Panel) Resolve(id int, d SubRegionDetail, err error) {
	e, ok := p.index[id]
	if !ok || e.Status != StatusLoading {
		return
	}
	if err != nil {
		e.Status = StatusFailed
		return
	}
	e.Detail = d
	e.Status = StatusLoaded
}

// SetFilter：按名称子串（忽略大小写）切换条目可见性；不发起任何请求
func (p *Panel) SetFilter(q string) {
	p.filter = q
	lq := strings.ToLower(q)
	for _, e := range p.entries {
		e.Hidden = !strings.Contains(strings.ToLower(e.SubRegion.Name), lq)
	}
}

// Filter：当前过滤词
func (p *Panel) Filter() string { return p.filter }

// Visible：通过过滤的条目
func (p *Panel) Visible() []*Entry {
	out := make([]*Entry, 0, len(p.entries))
	for _, e := range p.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Body：条目主体内容；未加载时为空
func (p *Panel) Body(e *Entry) []string {
	switch e.Status {
	case StatusLoading:
		return []string{SubRegionLoadingMessage}
	case StatusFailed:
		return []string{SubRegionErrorMessage}
	case StatusLoaded:
		return []string{
			"Population: " + p.format.Population(e.Detail.Population),
			"Surface: " + Surface(e.Detail.Surface),
			"Postal code: " + PostalCodeText(e.Detail.PostalCode),
		}
	}
	return nil
}
