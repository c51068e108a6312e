package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

type browseModel struct {
	ctx         context.Context
	reflections service.ReflectionService
	pageSize    int
	buildInfo   models.AppBuildInfo

	filter    textinput.Model
	filtering bool
	criteria  query.Criteria
	// tagIdx is 0 for no tag filter, else 1 + index into result.Tags.
	tagIdx int
	page   int
	idx    int

	result  service.BrowseResult
	loading bool
	status  string
	errMsg  string

	detail        *detailModel
	confirm       *confirmModel
	showBuildInfo bool

	copyText func(string) error
}

func newBrowseModel(ctx context.Context, reflections service.ReflectionService, pageSize int, buildInfo models.AppBuildInfo) browseModel {
	filter := textinput.New()
	filter.Placeholder = "keyword"
	filter.Prompt = "/ "
	filter.Width = 40

	return browseModel{
		ctx:         ctx,
		reflections: reflections,
		pageSize:    pageSize,
		buildInfo:   buildInfo,
		filter:      filter,
		page:        1,
		loading:     true,
		copyText:    clipboard.WriteAll,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.LoadMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.result = msg.result
		m.page = msg.result.Page.Page
		m.idx = min(max(m.idx, 0), max(len(m.result.Page.Rows)-1, 0))
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.errMsg = app.LoadMessage(msg.err)
			return m, nil
		}
		d := newDetailModel(msg.item)
		m.detail = &d
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = app.MsgUnableToDeleteReflection
			return m, nil
		}
		m.status = app.MsgReflectionDeleted
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.errMsg != "" && key.Matches(keyMsg, keys.esc, keys.enter):
		m.errMsg = ""
		return m, nil
	case m.filtering:
		return m.updateFilter(keyMsg)
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.detail != nil:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m browseModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.result.Page.Rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.prevPage):
		if m.result.Page.HasPrev() {
			return m.goToPage(m.page - 1)
		}
	case key.Matches(keyMsg, keys.nextPage):
		if m.result.Page.HasNext() {
			return m.goToPage(m.page + 1)
		}
	case key.Matches(keyMsg, keys.filter):
		m.filtering = true
		m.filter.SetValue(m.criteria.Keyword)
		return m, m.filter.Focus()
	case key.Matches(keyMsg, keys.tag):
		return m.cycleTag()
	case key.Matches(keyMsg, keys.clear):
		m.criteria = query.Criteria{}
		m.tagIdx = 0
		return m.goToPage(1)
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.enter):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpen(row.Reflection.ID)
	case key.Matches(keyMsg, keys.delete):
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{id: row.Reflection.ID, title: row.Title()}
	}
	return m, nil
}

func (m browseModel) updateFilter(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.criteria.Keyword = strings.TrimSpace(m.filter.Value())
		return m.goToPage(1)
	case key.Matches(keyMsg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(keyMsg)
	return m, cmd
}

func (m browseModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		id := m.confirm.id
		m.confirm = nil
		m.detail = nil
		return m, m.cmdDelete(id)
	case key.Matches(keyMsg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m browseModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.detail = nil
	case key.Matches(keyMsg, keys.copy):
		if err := m.copyText(m.detail.item.Reflection.Body); err != nil {
			m.errMsg = app.MsgUnableToCopy
			return m, nil
		}
		m.status = app.MsgCopied
	case key.Matches(keyMsg, keys.delete):
		m.confirm = &confirmModel{id: m.detail.item.Reflection.ID, title: m.detail.item.Reflection.Title}
	}
	return m, nil
}

// cycleTag steps through no filter and then every known tag.
func (m browseModel) cycleTag() (tea.Model, tea.Cmd) {
	tags := m.result.Tags
	if len(tags) == 0 {
		return m, nil
	}

	m.tagIdx = (m.tagIdx + 1) % (len(tags) + 1)
	if m.tagIdx == 0 {
		m.criteria.Tag = ""
	} else {
		m.criteria.Tag = tags[m.tagIdx-1]
	}
	return m.goToPage(1)
}

func (m browseModel) goToPage(page int) (tea.Model, tea.Cmd) {
	m.page = page
	m.idx = 0
	m.loading = true
	return m, m.cmdLoad()
}

func (m browseModel) current() (query.Row, bool) {
	rows := m.result.Page.Rows
	if m.idx < 0 || m.idx >= len(rows) {
		return query.Row{}, false
	}
	return rows[m.idx], true
}

func (m browseModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.reflections
	criteria, page, pageSize := m.criteria, m.page, m.pageSize

	return func() tea.Msg {
		result, err := svc.Browse(ctx, criteria, page, pageSize)
		return browseLoadedMsg{result: result, err: err}
	}
}

func (m browseModel) cmdOpen(id int64) tea.Cmd {
	ctx, svc := m.ctx, m.reflections

	return func() tea.Msg {
		item, err := svc.Get(ctx, id)
		return detailLoadedMsg{item: item, err: err}
	}
}

func (m browseModel) cmdDelete(id int64) tea.Cmd {
	ctx, svc := m.ctx, m.reflections

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, id)}
	}
}

func (m browseModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if m.detail != nil {
		out := m.detail.View()
		if m.confirm != nil {
			out += "\n\n" + m.confirm.View()
		}
		if m.status != "" {
			out += "\n\n" + m.status
		}
		return renderPage(m.detail.title(), out, "esc: back", "c: copy body", "d: delete")
	}

	var b strings.Builder
	b.WriteString(m.viewStats())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.result.Page.Rows) == 0:
		b.WriteString("No reflections\n")
	default:
		b.WriteString(m.viewRows())
	}

	if m.filtering {
		b.WriteString("\n" + m.filter.View() + "\n")
	}
	if m.confirm != nil {
		b.WriteString("\n" + m.confirm.View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(errorOverlayModel{message: m.errMsg}.View()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"TRADE JOURNAL",
		strings.TrimRight(b.String(), "\n"),
		"enter: open", "/: search", "t: tag", "x: clear", "←/→: page", "d: delete", "r: reload", "v: about",
	)
}

func (m browseModel) viewStats() string {
	s := m.result.Stats
	net := s.NetPnLText()
	switch {
	case s.NetPnL.IsPositive():
		net = winStyle.Render(net)
	case s.NetPnL.IsNegative():
		net = lossStyle.Render(net)
	}
	return fmt.Sprintf("Net PnL %s │ Wins %d │ Losses %d │ Win rate %s", net, s.Wins, s.Losses, s.WinRateText())
}

func (m browseModel) viewFilters() string {
	p := m.result.Page
	parts := []string{fmt.Sprintf("Page %d/%d (%d)", max(p.Page, 1), max(p.PageCount, 1), p.Total)}
	if m.criteria.Keyword != "" {
		parts = append(parts, "search: "+m.criteria.Keyword)
	}
	if m.criteria.Tag != "" {
		parts = append(parts, "tag: "+m.criteria.Tag)
	}
	return strings.Join(parts, " │ ")
}

func (m browseModel) viewRows() string {
	var b strings.Builder
	b.WriteString("  Date       │ Title                    │ Instr. │ Outcome    │ PnL\n")
	b.WriteString("  ───────────┼──────────────────────────┼────────┼────────────┼──────────\n")
	for i, row := range m.result.Page.Rows {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %-10s │ %-24s │ %-6s │ %-10s │ %s\n",
			cursor,
			row.Reflection.CreatedAt.UTC().Format(models.DateLayout),
			fitText(row.Title(), 24),
			fitText(valueOrDash(row.Doc.Instrument), 6),
			fitText(valueOrDash(row.Doc.Outcome), 10),
			valueOrDash(row.Doc.PnL),
		)
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	slices.Sort(ids)
	return ids
}
