package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"region-explorer/internal/explorer"
	"region-explorer/internal/logger"
	"region-explorer/internal/metrics"
)

func (m *Model) Init() tea.Cmd {
	return loadRegionsCmd(m.source, m.timeout)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Search.Width = max(10, msg.Width-8)
		m.SubFilter.Width = max(10, msg.Width-8)

	case regionsLoadedMsg:
		m.CardsLoading = false
		if msg.err != nil {
			m.CardsErr = msg.err
			logger.L().Error("regions_load_error", "err", msg.err)
			return m, nil
		}
		m.Catalog = msg.catalog
		logger.L().Info("regions_loaded", "count", m.Catalog.Len())
		m.refreshCards()

	case detailLoadedMsg:
		if !m.selector.Current(msg.token) {
			metrics.StaleResponsesTotal.WithLabelValues("detail").Inc()
			logger.L().Debug("detail_stale_drop", "id", msg.id, "token", msg.token)
			return m, nil
		}
		if msg.err != nil {
			m.DetailState = detailFailed
			m.DetailErr = msg.err
			logger.L().Error("detail_load_error", "id", msg.id, "err", msg.err)
			return m, nil
		}
		m.Panel = explorer.NewPanel(msg.detail, msg.token, m.format)
		m.DetailState = detailReady
		m.EntryCursor = 0

	case subRegionLoadedMsg:
		if m.Panel == nil || m.Panel.Token != msg.token {
			metrics.StaleResponsesTotal.WithLabelValues("subregion").Inc()
			logger.L().Debug("subregion_stale_drop", "id", msg.id, "token", msg.token)
			return m, nil
		}
		if msg.err != nil {
			logger.L().Error("subregion_load_error", "id", msg.id, "err", msg.err)
		}
		m.Panel.Resolve(msg.id, msg.detail, msg.err)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quit = true
			return m, tea.Quit
		}
		if m.Screen == screenDetail {
			return m.updateDetailKeys(msg)
		}
		return m.updateCardKeys(msg)
	}
	return m, nil
}

func (m *Model) updateCardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.Search.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			// 输入时仍可移动光标
		default:
			var cmd tea.Cmd
			m.Search, cmd = m.Search.Update(msg)
			m.refreshCards()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		return m, m.Search.Focus()
	case key.Matches(msg, m.keys.Up):
		m.CardCursor = clamp(m.CardCursor-1, len(m.Cards.Cards))
	case key.Matches(msg, m.keys.Down):
		m.CardCursor = clamp(m.CardCursor+1, len(m.Cards.Cards))
	case key.Matches(msg, m.keys.Select):
		if len(m.Cards.Cards) == 0 {
			return m, nil
		}
		return m, m.selectRegion(m.Cards.Cards[m.CardCursor].RegionID)
	}
	return m, nil
}

// selectRegion：立即切换到加载占位并发起联合请求；旧面板随之失效
func (m *Model) selectRegion(id int) tea.Cmd {
	token := m.selector.Next(id)
	metrics.SelectionsTotal.Inc()
	logger.L().Debug("region_select", "id", id, "token", token)
	m.Screen = screenDetail
	m.Panel = nil
	m.DetailState = detailLoading
	m.DetailErr = nil
	m.EntryCursor = 0
	m.SubFilter.Reset()
	m.SubFilter.Blur()
	return loadDetailCmd(m.source, m.timeout, token, id)
}

func (m *Model) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SubFilter.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.SubFilter.Blur()
			return m, nil
		case tea.KeyUp, tea.KeyDown:
		default:
			var cmd tea.Cmd
			m.SubFilter, cmd = m.SubFilter.Update(msg)
			if m.Panel != nil {
				m.Panel.SetFilter(m.SubFilter.Value())
				m.EntryCursor = clamp(m.EntryCursor, len(m.Panel.Visible()))
			}
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.selector.Invalidate()
		m.Screen = screenCards
		m.Panel = nil
		m.SubFilter.Blur()
		return m, nil
	}

	if m.Panel == nil {
		return m, nil
	}
	visible := m.Panel.Visible()
	switch {
	case key.Matches(msg, m.keys.Filter):
		return m, m.SubFilter.Focus()
	case key.Matches(msg, m.keys.Up):
		m.EntryCursor = clamp(m.EntryCursor-1, len(visible))
	case key.Matches(msg, m.keys.Down):
		m.EntryCursor = clamp(m.EntryCursor+1, len(visible))
	case key.Matches(msg, m.keys.Select):
		if len(visible) == 0 {
			return m, nil
		}
		id := visible[clamp(m.EntryCursor, len(visible))].SubRegion.ID
		if m.Panel.Toggle(id) {
			metrics.SubRegionFetchTotal.Inc()
			return m, loadSubRegionCmd(m.source, m.timeout, m.Panel.Token, id)
		}
	}
	return m, nil
}
