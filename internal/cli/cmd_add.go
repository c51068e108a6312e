package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
	"github.com/MKhiriev/go-trade-journal/models"
)

// addCmd fills a draft from flags and saves it as a new reflection.
type addCmd struct {
	env *Env

	fields   map[string]*string
	answers  keyValues
	checks   stringList
	checkAll bool
	images   stringList
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "journal a new trade reflection" }
func (*addCmd) Usage() string {
	return `journal add -instrument <sym> -timeframe <tf> -direction <long|short> -setup <name>
            -outcome <text> -confidence <1-5> [-entry <price> -exit <price> -qty <n>]
            [-pnl <amount>] [-prices <text>] [-tags <a,b>] [-answer <id>=<text>]...
            [-check <item-id>]... [-check-all] [-image <file>]...

  Saves a new reflection. For a known futures symbol the PnL is calculated
  from entry, exit and quantity unless -pnl is given.
`
}

// addFlags lists the draft fields in the order they are applied. PnL comes
// last so a typed value overrides the calculated one.
var addFlags = []struct {
	name  string
	key   string
	usage string
}{
	{"instrument", journal.FieldInstrument, "Traded instrument, e.g. ES"},
	{"timeframe", journal.FieldTimeframe, "Chart timeframe, e.g. 5m"},
	{"direction", journal.FieldDirection, "Trade direction (long, short)"},
	{"entry", journal.FieldEntryPrice, "Entry price"},
	{"exit", journal.FieldExitPrice, "Exit price"},
	{"qty", journal.FieldQuantity, "Number of contracts"},
	{"prices", journal.FieldPrices, "Free-form price notes"},
	{"setup", journal.FieldSetupName, "Setup name, used as the title"},
	{"outcome", journal.FieldOutcome, "Outcome, e.g. Win or Stopped out"},
	{"confidence", journal.FieldConfidence, "Confidence from 1 to 5"},
	{"tags", journal.FieldTags, "Comma separated tags"},
	{"pnl", journal.FieldPnL, "Realised PnL, overrides the calculated value"},
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.fields = make(map[string]*string, len(addFlags))
	for _, af := range addFlags {
		c.fields[af.key] = f.String(af.name, "", af.usage)
	}
	c.answers = keyValues{}
	f.Var(c.answers, "answer", "Answer to a reflection question as <question-id>=<text> (repeatable)")
	f.Var(&c.checks, "check", "Checklist item id to tick (repeatable)")
	f.BoolVar(&c.checkAll, "check-all", false, "Tick every checklist item")
	f.Var(&c.images, "image", "Screenshot file to attach (repeatable)")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env

	draft, err := e.Services.NewDraft(ctx)
	if err != nil {
		return e.fail(ctx, "addCmd.Execute", app.MsgUnableToLoadReflectionQuestions, err)
	}

	for _, af := range addFlags {
		v := *c.fields[af.key]
		if af.key == journal.FieldPnL && v == "" {
			continue
		}
		if err = draft.Set(af.key, v); err != nil {
			return e.usage("%v", err)
		}
	}

	known := make(map[string]bool, len(draft.Questions()))
	for _, q := range draft.Questions() {
		known[q.ID] = true
	}
	for _, id := range sortedKeys(c.answers) {
		if !known[id] {
			return e.usage("unknown reflection question %q", id)
		}
		draft.Answer(id, c.answers[id])
	}

	if c.checkAll {
		for _, item := range draft.Draft().Checklist {
			draft.Toggle(item.ID)
		}
	} else {
		ticked := make(map[string]bool, len(c.checks))
		for _, id := range c.checks {
			if ticked[id] {
				continue
			}
			if !draft.Toggle(id) {
				return e.usage("unknown checklist item %q", id)
			}
			ticked[id] = true
		}
	}

	if len(c.images) > 0 {
		images := make([]models.NewImage, 0, len(c.images))
		for _, path := range c.images {
			img, err := readImage(path)
			if err != nil {
				return e.fail(ctx, "addCmd.Execute", app.MsgUnableToReadImage, err)
			}
			images = append(images, img)
		}
		if accepted := draft.AddImages(images...); accepted < len(images) {
			fmt.Fprintf(e.Err, "Only the first %d images were attached.\n", accepted)
		}
	}

	if draft.Draft().ChecklistComplete() {
		if err = e.Services.Templates.MarkChecklistComplete(ctx, e.now()); err != nil {
			return e.fail(ctx, "addCmd.Execute", app.MsgUnableToSaveReflection, err)
		}
	}

	saved, err := e.Services.Reflections.Save(ctx, draft.Draft())
	if err != nil {
		return e.fail(ctx, "addCmd.Execute", app.SaveMessage(err), err)
	}

	fmt.Fprintf(e.Out, "%s #%d\n", app.MsgReflectionSaved, saved.Reflection.ID)
	return subcommands.ExitSuccess
}
