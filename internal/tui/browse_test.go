package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

// fakeReflections serves Browse/Get/Delete from memory.
type fakeReflections struct {
	service.ReflectionService

	all       []models.Reflection
	criteria  []query.Criteria
	deleted   []int64
	deleteErr error
}

func (f *fakeReflections) Browse(_ context.Context, c query.Criteria, page, pageSize int) (service.BrowseResult, error) {
	f.criteria = append(f.criteria, c)
	rows := query.Rows(f.all)
	matched := query.Filter(rows, c)
	return service.BrowseResult{
		Page:  query.Paginate(matched, page, pageSize),
		Stats: query.Summarize(matched),
		Tags:  query.UniqueTags(rows),
	}, nil
}

func (f *fakeReflections) Get(_ context.Context, id int64) (models.ReflectionWithImages, error) {
	for _, r := range f.all {
		if r.ID == id {
			return models.ReflectionWithImages{Reflection: r}, nil
		}
	}
	return models.ReflectionWithImages{}, service.ErrReflectionNotFound
}

func (f *fakeReflections) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func newTestBrowse(t *testing.T, pageSize int) (browseModel, *fakeReflections) {
	t.Helper()
	fake := &fakeReflections{all: []models.Reflection{
		{ID: 3, Title: "Fade", Body: `{"instrument":"NQ","outcome":"Loss","pnl":"-40"}`, Tags: []string{"fade"}},
		{ID: 2, Title: "ORB", Body: `{"instrument":"ES","outcome":"Win","pnl":"100"}`, Tags: []string{"orb"}},
		{ID: 1, Title: "legacy", Body: "free text about the open"},
	}}

	m := newBrowseModel(context.Background(), fake, pageSize, models.NewAppBuildInfo("1.0.0", "", ""))
	m = run(t, m, m.Init())
	return m, fake
}

// run feeds the result of cmd back into the model until no command is left.
func run(t *testing.T, m browseModel, cmd tea.Cmd) browseModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case browseLoadedMsg, detailLoadedMsg, deleteDoneMsg:
		default:
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(browseModel)
	}
	return m
}

func press(t *testing.T, m browseModel, keys ...string) browseModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, cmd := m.Update(msg)
		// typing into the search box only schedules cursor blinks
		if m = next.(browseModel); m.filtering {
			continue
		}
		m = run(t, m, cmd)
	}
	return m
}

func TestBrowse_InitialLoad(t *testing.T) {
	m, _ := newTestBrowse(t, 25)

	assert.False(t, m.loading)
	assert.Equal(t, 3, m.result.Page.Total)
	view := m.View()
	assert.Contains(t, view, "Net PnL")
	assert.Contains(t, view, "60.00")
	assert.Contains(t, view, "50.0%")
	assert.Contains(t, view, "Fade")
}

func TestBrowse_Pagination(t *testing.T) {
	m, _ := newTestBrowse(t, 2)
	assert.Equal(t, 2, m.result.Page.PageCount)

	m = press(t, m, "l")
	assert.Equal(t, 2, m.page)
	require.Len(t, m.result.Page.Rows, 1)

	m = press(t, m, "l")
	assert.Equal(t, 2, m.page, "no page after the last")

	m = press(t, m, "h")
	assert.Equal(t, 1, m.page)
}

func TestBrowse_KeywordFilter(t *testing.T) {
	m, fake := newTestBrowse(t, 25)

	m = press(t, m, "/", "o", "p", "e", "n", "enter")
	assert.False(t, m.filtering)
	assert.Equal(t, "open", m.criteria.Keyword)
	assert.Equal(t, "open", fake.criteria[len(fake.criteria)-1].Keyword)
	require.Len(t, m.result.Page.Rows, 1)
	assert.Equal(t, int64(1), m.result.Page.Rows[0].Reflection.ID)

	m = press(t, m, "x")
	assert.Equal(t, query.Criteria{}, m.criteria)
	assert.Len(t, m.result.Page.Rows, 3)
}

func TestBrowse_TagCycling(t *testing.T) {
	m, _ := newTestBrowse(t, 25)

	m = press(t, m, "t")
	assert.Equal(t, "fade", m.criteria.Tag)
	m = press(t, m, "t")
	assert.Equal(t, "orb", m.criteria.Tag)
	require.Len(t, m.result.Page.Rows, 1)
	m = press(t, m, "t")
	assert.Equal(t, "", m.criteria.Tag)
	assert.Len(t, m.result.Page.Rows, 3)
}

func TestBrowse_DetailCopyAndDelete(t *testing.T) {
	m, fake := newTestBrowse(t, 25)
	var copied string
	m.copyText = func(s string) error { copied = s; return nil }

	m = press(t, m, "down", "enter")
	require.NotNil(t, m.detail)
	assert.Equal(t, int64(2), m.detail.item.Reflection.ID)
	assert.Contains(t, m.View(), "Instrument")

	m = press(t, m, "c")
	assert.Equal(t, fake.all[1].Body, copied)
	assert.Equal(t, app.MsgCopied, m.status)

	m = press(t, m, "d")
	require.NotNil(t, m.confirm)
	m = press(t, m, "n")
	assert.Nil(t, m.confirm)
	assert.Empty(t, fake.deleted)

	m = press(t, m, "d", "y")
	assert.Nil(t, m.detail)
	assert.Equal(t, []int64{2}, fake.deleted)
	assert.Equal(t, app.MsgReflectionDeleted, m.status)
}

func TestBrowse_CopyFailure(t *testing.T) {
	m, _ := newTestBrowse(t, 25)
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m = press(t, m, "enter", "c")
	assert.Equal(t, app.MsgUnableToCopy, m.errMsg)
}

func TestBrowse_DeleteFailure(t *testing.T) {
	m, fake := newTestBrowse(t, 25)
	fake.deleteErr = errors.New("locked")

	m = press(t, m, "d", "y")
	assert.Equal(t, []int64{3}, fake.deleted)
	assert.Equal(t, app.MsgUnableToDeleteReflection, m.errMsg)
	assert.True(t, strings.Contains(m.View(), app.MsgUnableToDeleteReflection))
}

func TestBrowse_BuildInfo(t *testing.T) {
	m, _ := newTestBrowse(t, 25)

	m = press(t, m, "v")
	assert.Contains(t, m.View(), "Version: 1.0.0")
	m = press(t, m, "esc")
	assert.False(t, m.showBuildInfo)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
}
