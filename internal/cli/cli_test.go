package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/export"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/internal/store"
	"github.com/MKhiriev/go-trade-journal/models"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type fakeBrowser struct {
	calls int
	err   error
}

func (b *fakeBrowser) Browse(context.Context) error {
	b.calls++
	return b.err
}

type testEnv struct {
	*Env
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	browser *fakeBrowser
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	cfg := config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{DSN: ":memory:"}},
		UI:      config.UI{PageSize: 2, MaxImages: 5},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	te := &testEnv{
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
		browser: &fakeBrowser{},
	}
	te.Env = &Env{
		Services:  service.NewServices(storages, cfg, logger.Nop()),
		BuildInfo: models.NewAppBuildInfo("v1.0.0", "2026-03-14", "abc123"),
		PageSize:  cfg.UI.PageSize,
		In:        strings.NewReader(""),
		Out:       te.out,
		Err:       te.errOut,
	}
	te.Browser = te.browser
	return te
}

// run executes cmd with args the way the commander would, after clearing
// the output buffers.
func (te *testEnv) run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	te.out.Reset()
	te.errOut.Reset()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(logger.Nop().WithContext(context.Background()), fs)
}

var orbTrade = []string{
	"-instrument", "ES",
	"-timeframe", "5m",
	"-direction", "long",
	"-entry", "5000",
	"-exit", "5002.5",
	"-qty", "2",
	"-setup", "ORB",
	"-outcome", "Win",
	"-confidence", "4",
	"-tags", "orb, morning",
}

func (te *testEnv) addORB(t *testing.T, extra ...string) {
	t.Helper()
	status := te.run(t, &addCmd{env: te.Env}, append(append([]string{}, orbTrade...), extra...)...)
	require.Equal(t, subcommands.ExitSuccess, status, te.errOut.String())
}

// ── add / list / show ────────────────────────────────────────────────────────

func TestAdd_ThenListAndShow(t *testing.T) {
	te := newTestEnv(t)
	thesis := service.DefaultReflectionQuestions()[0]

	status := te.run(t, &addCmd{env: te.Env}, append(append([]string{}, orbTrade...),
		"-answer", thesis.ID+"=Opening range break with volume",
		"-check", "plan",
	)...)
	require.Equal(t, subcommands.ExitSuccess, status, te.errOut.String())
	assert.Equal(t, app.MsgReflectionSaved+" #1\n", te.out.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &listCmd{env: te.Env}))
	listing := te.out.String()
	assert.Contains(t, listing, "Net PnL: 250.00  Win rate: 100.0%  (1 wins, 0 losses)")
	assert.Contains(t, listing, "ORB")
	assert.Contains(t, listing, "orb,morning")
	assert.Contains(t, listing, "Page 1/1 (1 total)")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &showCmd{env: te.Env}, "1"))
	detail := te.out.String()
	assert.True(t, strings.HasPrefix(detail, "#1 ORB\n"), detail)
	assert.Contains(t, detail, "250.00")
	assert.Contains(t, detail, "[x] Plan the trade")
	assert.Contains(t, detail, "[ ] Define risk")
	assert.Contains(t, detail, thesis.Label)
	assert.Contains(t, detail, "Opening range break with volume")
}

func TestShow_JSON(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &showCmd{env: te.Env}, "-json", "1"))

	var item models.ReflectionWithImages
	require.NoError(t, json.Unmarshal(te.out.Bytes(), &item))
	assert.Equal(t, int64(1), item.Reflection.ID)
	assert.Equal(t, "ORB", item.Reflection.Title)
	assert.Equal(t, []string{"orb", "morning"}, item.Reflection.Tags)
}

func TestShow_Errors(t *testing.T) {
	te := newTestEnv(t)

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &showCmd{env: te.Env}))
	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &showCmd{env: te.Env}, "abc"))

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &showCmd{env: te.Env}, "42"))
	assert.Contains(t, te.errOut.String(), app.MsgReflectionNotFound)
}

func TestAdd_MissingRequiredFields(t *testing.T) {
	te := newTestEnv(t)

	status := te.run(t, &addCmd{env: te.Env}, "-instrument", "ES")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, te.errOut.String(), app.MsgFillRequiredFields)
}

func TestAdd_UnknownQuestionOrChecklistItem(t *testing.T) {
	te := newTestEnv(t)

	status := te.run(t, &addCmd{env: te.Env}, append(append([]string{}, orbTrade...), "-answer", "nope=x")...)
	assert.Equal(t, subcommands.ExitUsageError, status)

	status = te.run(t, &addCmd{env: te.Env}, append(append([]string{}, orbTrade...), "-check", "nope")...)
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestAdd_ManualPnLOverridesCalculation(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t, "-pnl", "240")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &statsCmd{env: te.Env}))
	assert.Contains(t, te.out.String(), "Net PnL: 240.00")
}

func TestAdd_ChecklistBlocking(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "blocking", "on"))
	assert.Equal(t, "Checklist blocking: true\n", te.out.String())

	status := te.run(t, &addCmd{env: te.Env}, orbTrade...)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, te.errOut.String(), app.MsgChecklistIncomplete)

	te.addORB(t, "-check-all")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "due"))
	assert.Equal(t, "Daily checklist due: false\n", te.out.String())

	// Completed for today, so further reflections go through unchecked.
	te.addORB(t)
}

func TestAdd_Images(t *testing.T) {
	te := newTestEnv(t)
	dir := t.TempDir()
	chart := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(chart, []byte("png"), 0o600))

	te.addORB(t, "-image", chart)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &showCmd{env: te.Env}, "-json", "1"))
	var item models.ReflectionWithImages
	require.NoError(t, json.Unmarshal(te.out.Bytes(), &item))
	require.Len(t, item.Images, 1)
	assert.Equal(t, "chart.png", item.Images[0].Name)
	assert.Equal(t, "data:image/png;base64,cG5n", item.Images[0].DataURL)

	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("text"), 0o600))
	status := te.run(t, &addCmd{env: te.Env}, append(append([]string{}, orbTrade...), "-image", notes)...)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, te.errOut.String(), app.MsgUnableToReadImage)
}

// ── list / stats filters ─────────────────────────────────────────────────────

func TestList_FiltersAndPages(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)
	te.addORB(t)
	status := te.run(t, &addCmd{env: te.Env},
		"-instrument", "NQ", "-timeframe", "1m", "-direction", "short", "-setup", "Fade",
		"-outcome", "Stopped out", "-confidence", "2", "-pnl", "-100", "-tags", "fade")
	require.Equal(t, subcommands.ExitSuccess, status, te.errOut.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &listCmd{env: te.Env}, "-page", "9"))
	assert.Contains(t, te.out.String(), "Net PnL: 400.00  Win rate: 66.7%  (2 wins, 1 losses)")
	assert.Contains(t, te.out.String(), "Page 2/2 (3 total)")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &listCmd{env: te.Env}, "-instrument", "nq"))
	assert.Contains(t, te.out.String(), "Fade")
	assert.NotContains(t, te.out.String(), "ORB")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &listCmd{env: te.Env}, "-tag", "missing"))
	assert.Contains(t, te.out.String(), "No reflections.")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &statsCmd{env: te.Env}, "-q", "fade"))
	stats := te.out.String()
	assert.Contains(t, stats, "Matching: 1 of 3 reflections (0 images stored)")
	assert.Contains(t, stats, "Net PnL: -100.00  Win rate: 0.0%  (0 wins, 1 losses)")
	assert.Contains(t, stats, "Tags: fade, morning, orb")
}

func TestSearch_MatchesBodyText(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)
	te.addORB(t)
	status := te.run(t, &addCmd{env: te.Env},
		"-instrument", "NQ", "-timeframe", "1m", "-direction", "short", "-setup", "Fade",
		"-outcome", "Stopped out", "-confidence", "2", "-tags", "fade")
	require.Equal(t, subcommands.ExitSuccess, status, te.errOut.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &searchCmd{env: te.Env}, "5M"))
	out := te.out.String()
	assert.Contains(t, out, "ID  CREATED")
	assert.Equal(t, 2, strings.Count(out, "orb,morning"))
	assert.NotContains(t, out, "Fade")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &searchCmd{env: te.Env}, "-limit", "1", "5m"))
	lines := strings.Split(strings.TrimSpace(te.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "2 "), lines[1])

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &searchCmd{env: te.Env}, "-tag", "fade", "stopped", "out"))
	assert.Contains(t, te.out.String(), "Fade")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &searchCmd{env: te.Env}, "nothing like this"))
	assert.Equal(t, "No reflections.\n", te.out.String())

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &searchCmd{env: te.Env}, "-limit", "-1"))
}

// ── edit / delete ────────────────────────────────────────────────────────────

func TestEdit(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	status := te.run(t, &editCmd{env: te.Env}, "-set", "setupName=ORB retest", "-set", "outcome=Loss", "-set", "pnl=-40", "1")
	require.Equal(t, subcommands.ExitSuccess, status, te.errOut.String())
	assert.Equal(t, app.MsgReflectionUpdated+" #1 ORB retest\n", te.out.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &statsCmd{env: te.Env}, "-outcome", "loss"))
	assert.Contains(t, te.out.String(), "Net PnL: -40.00  Win rate: 0.0%  (0 wins, 1 losses)")
}

func TestEdit_Errors(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &editCmd{env: te.Env}, "1"))
	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &editCmd{env: te.Env}, "-set", "outcome=Win"))

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &editCmd{env: te.Env}, "-set", "outcome=Win", "7"))
	assert.Contains(t, te.errOut.String(), app.MsgReflectionNotFound)

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &editCmd{env: te.Env}, "-set", "setupName= ", "1"))
	assert.Contains(t, te.errOut.String(), app.MsgFillRequiredFields)

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &editCmd{env: te.Env}, "-set", "colour=red", "1"))
	assert.Contains(t, te.errOut.String(), app.MsgUnableToSaveReflection)
}

func TestDelete_AsksForConfirmation(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	te.In = strings.NewReader("n\n")
	require.Equal(t, subcommands.ExitSuccess, te.run(t, &deleteCmd{env: te.Env}, "1"))
	assert.Contains(t, te.out.String(), "Delete reflection #1 ORB? [y/N]: Cancelled.")
	require.Equal(t, subcommands.ExitSuccess, te.run(t, &showCmd{env: te.Env}, "1"))

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &deleteCmd{env: te.Env}, "-yes", "1"))
	assert.Equal(t, app.MsgReflectionDeleted+"\n", te.out.String())

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &deleteCmd{env: te.Env}, "-yes", "1"))
	assert.Contains(t, te.errOut.String(), app.MsgReflectionNotFound)
}

func TestDelete_ConfirmedByPrompt(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	te.In = strings.NewReader("YES\n")
	require.Equal(t, subcommands.ExitSuccess, te.run(t, &deleteCmd{env: te.Env}, "1"))
	assert.Contains(t, te.out.String(), app.MsgReflectionDeleted)
}

// ── export / import / wipe ───────────────────────────────────────────────────

func TestExport_CSVToStdout(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &exportCmd{env: te.Env}, "-o", "-"))
	lines := strings.Split(strings.TrimSpace(te.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(export.CSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], "ES,long,ORB,5000,5002.5,2,250.00,Win,4")
}

func TestExport_DefaultFileName(t *testing.T) {
	te := newTestEnv(t)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	te.Now = func() time.Time { return now }
	t.Chdir(t.TempDir())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &exportCmd{env: te.Env}, "-format", "JSON"))
	assert.Equal(t, "Exported to trading_journal_backup_2026-03-14.json\n", te.out.String())
	assert.FileExists(t, "trading_journal_backup_2026-03-14.json")

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &exportCmd{env: te.Env}, "-format", "xml"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestEnv(t)
	source.addORB(t, "-check-all")
	backup := filepath.Join(t.TempDir(), "backup.json")
	require.Equal(t, subcommands.ExitSuccess, source.run(t, &exportCmd{env: source.Env}, "-format", "json", "-o", backup))

	target := newTestEnv(t)
	require.Equal(t, subcommands.ExitSuccess, target.run(t, &importCmd{env: target.Env}, backup))
	assert.Equal(t, "Imported 1 reflections, 0 images and 1 settings.\n", target.out.String())

	require.Equal(t, subcommands.ExitSuccess, target.run(t, &showCmd{env: target.Env}, "1"))
	assert.True(t, strings.HasPrefix(target.out.String(), "#1 ORB\n"))
}

func TestImport_Errors(t *testing.T) {
	te := newTestEnv(t)

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &importCmd{env: te.Env}))

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &importCmd{env: te.Env}, filepath.Join(t.TempDir(), "missing.json")))
	assert.Contains(t, te.errOut.String(), app.MsgFailedToImport)

	te.In = strings.NewReader("{not json")
	assert.Equal(t, subcommands.ExitFailure, te.run(t, &importCmd{env: te.Env}, "-"))
	assert.Contains(t, te.errOut.String(), app.MsgFailedToImport)
}

func TestWipe(t *testing.T) {
	te := newTestEnv(t)
	te.addORB(t)

	te.In = strings.NewReader("\n")
	require.Equal(t, subcommands.ExitSuccess, te.run(t, &wipeCmd{env: te.Env}))
	assert.Contains(t, te.out.String(), "Delete 1 reflections and 0 images permanently? [y/N]: Cancelled.")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &wipeCmd{env: te.Env}, "-yes"))
	assert.Equal(t, app.MsgLocalDataCleared+"\n", te.out.String())

	assert.Equal(t, subcommands.ExitFailure, te.run(t, &listCmd{env: te.Env}))
	assert.Contains(t, te.errOut.String(), app.MsgUnableToLoadReflections)
}

// ── templates ────────────────────────────────────────────────────────────────

func TestTemplates_Checklist(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "checklist"))
	assert.Equal(t, "plan\tPlan the trade\nrisk\tDefine risk\nconfirm\tConfirm setup\n", te.out.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "checklist", "add", "Check news"))
	assert.True(t, strings.HasPrefix(te.out.String(), app.MsgChecklistTemplateSaved+"\n"))
	assert.Contains(t, te.out.String(), "Check news")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "checklist", "down", "plan"))
	assert.Contains(t, te.out.String(), "risk\tDefine risk\nplan\tPlan the trade\n")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "checklist", "remove", "plan"))
	assert.NotContains(t, te.out.String(), "Plan the trade")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "checklist", "reset"))
	assert.Contains(t, te.out.String(), "plan\tPlan the trade\n")
	assert.NotContains(t, te.out.String(), "Check news")
}

func TestTemplates_QuestionsTargetsSections(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "questions", "add", "Mood?", "How did you feel?"))
	assert.Contains(t, te.out.String(), app.MsgReflectionQuestionsSaved)
	assert.Contains(t, te.out.String(), "Mood?\t(How did you feel?)")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "targets", "add", "VWAP"))
	assert.True(t, strings.HasSuffix(te.out.String(), "Previous High/Low\nVWAP\n"))

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "targets", "remove", "Manual"))
	assert.NotContains(t, te.out.String(), "Manual")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "sections", "hide", "evidence"))
	assert.Contains(t, te.out.String(), "evidence\tCharts & Notes\thidden\n")

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "sections", "up", "outcome"))
	assert.Equal(t, "setup\tSetup Details\tvisible\n"+
		"outcome\tOutcome\tvisible\n"+
		"execution\tExecution & Risk\tvisible\n"+
		"evidence\tCharts & Notes\thidden\n", te.out.String())
}

func TestTemplates_InvalidArguments(t *testing.T) {
	te := newTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no kind", nil},
		{"unknown kind", []string{"colours"}},
		{"unknown action", []string{"checklist", "shuffle"}},
		{"add without text", []string{"checklist", "add"}},
		{"question without placeholder", []string{"questions", "add", "Mood?"}},
		{"unknown section", []string{"sections", "hide", "nope"}},
		{"bad blocking value", []string{"blocking", "maybe"}},
		{"complete with operand", []string{"complete", "now"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, subcommands.ExitUsageError, te.run(t, &templatesCmd{env: te.Env}, tt.args...))
		})
	}
}

func TestTemplates_Complete(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "due"))
	assert.Equal(t, "Daily checklist due: true\n", te.out.String())

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "complete"))
	require.Equal(t, subcommands.ExitSuccess, te.run(t, &templatesCmd{env: te.Env}, "due"))
	assert.Equal(t, "Daily checklist due: false\n", te.out.String())
}

// ── pnl / browse / version ───────────────────────────────────────────────────

func TestPnL(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &pnlCmd{env: te.Env},
		"-symbol", "es", "-direction", "short", "-entry", "5000", "-exit", "5002.5", "-qty", "2"))
	assert.Equal(t, "PnL: -250.00\n", te.out.String())

	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &pnlCmd{env: te.Env}, "-symbol", "XYZ", "-entry", "1", "-exit", "2"))
	assert.Equal(t, subcommands.ExitUsageError, te.run(t, &pnlCmd{env: te.Env}, "-symbol", "ES", "-entry", "abc", "-exit", "2"))

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &pnlCmd{env: te.Env}, "-contracts"))
	assert.Contains(t, te.out.String(), "SYMBOL")
	assert.Contains(t, te.out.String(), "ES ")
}

func TestBrowse(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &browseCmd{env: te.Env}))
	assert.Equal(t, 1, te.browser.calls)

	te.browser.err = errors.New("no tty")
	assert.Equal(t, subcommands.ExitFailure, te.run(t, &browseCmd{env: te.Env}))
	assert.Contains(t, te.errOut.String(), "no tty")
}

func TestVersion(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, te.run(t, &versionCmd{env: te.Env}))
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-03-14\nBuild commit: abc123\n", te.out.String())
}

// ── wiring ───────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	te := newTestEnv(t)
	commander := subcommands.NewCommander(flag.NewFlagSet("journal", flag.ContinueOnError), "journal")
	Register(commander, te.Env)

	var names []string
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
	})
	for _, name := range []string{"add", "show", "list", "stats", "search", "edit", "delete", "browse",
		"templates", "pnl", "export", "import", "wipe", "version", "help"} {
		assert.Contains(t, names, name)
	}
}

func TestKeyValues(t *testing.T) {
	kv := keyValues{}
	require.NoError(t, kv.Set("pnl=-40"))
	require.NoError(t, kv.Set("notes=a=b"))
	require.NoError(t, kv.Set("pnl=10"))
	assert.Equal(t, keyValues{"pnl": "10", "notes": "a=b"}, kv)
	assert.Equal(t, "notes=a=b,pnl=10", kv.String())

	assert.Error(t, kv.Set("novalue"))
	assert.Error(t, kv.Set("=x"))
}
