package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/query"
	"github.com/MKhiriev/go-trade-journal/models"
)

// criteriaFlags registers the filter flags shared by list and stats.
func criteriaFlags(f *flag.FlagSet, c *query.Criteria) {
	f.StringVar(&c.Instrument, "instrument", "", "Only this instrument (case-insensitive)")
	f.StringVar(&c.Direction, "direction", "", "Only this direction (long, short)")
	f.StringVar(&c.Outcome, "outcome", "", "Only this outcome (case-insensitive)")
	f.StringVar(&c.Tag, "tag", "", "Only reflections carrying this tag")
	f.StringVar(&c.Keyword, "q", "", "Keyword searched in setup, tags, notes and answers")
	f.StringVar(&c.StartDate, "from", "", "Created on or after this date (YYYY-MM-DD or RFC 3339)")
	f.StringVar(&c.EndDate, "to", "", "Created on or before this date (YYYY-MM-DD or RFC 3339)")
}

type listCmd struct {
	env      *Env
	criteria query.Criteria
	page     int
	pageSize int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list reflections, newest first" }
func (*listCmd) Usage() string {
	return `journal list [-instrument <sym>] [-direction <dir>] [-outcome <text>] [-tag <tag>]
             [-q <keyword>] [-from <date>] [-to <date>] [-page <n>] [-page-size <n>]

  Lists one page of the reflections matching every given filter, with the
  statistics of the whole filtered set.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	criteriaFlags(f, &c.criteria)
	f.IntVar(&c.page, "page", 1, "Page to show; out of range values are clamped")
	f.IntVar(&c.pageSize, "page-size", 0, "Reflections per page (defaults to the configured page size)")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	pageSize := c.pageSize
	if pageSize <= 0 {
		pageSize = e.PageSize
	}

	result, err := e.Services.Reflections.Browse(ctx, c.criteria, c.page, pageSize)
	if err != nil {
		return e.fail(ctx, "listCmd.Execute", app.LoadMessage(err), err)
	}

	writeStats(e.Out, result.Stats)
	writePage(e.Out, result.Page)
	return subcommands.ExitSuccess
}

type statsCmd struct {
	env      *Env
	criteria query.Criteria
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "summarise PnL and win rate" }
func (*statsCmd) Usage() string {
	return `journal stats [-instrument <sym>] [-direction <dir>] [-outcome <text>] [-tag <tag>]
              [-q <keyword>] [-from <date>] [-to <date>]

  Prints net PnL, wins, losses and win rate of the matching reflections,
  the stored row counts and every tag in use.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	criteriaFlags(f, &c.criteria)
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env

	result, err := e.Services.Reflections.Browse(ctx, c.criteria, 1, 1)
	if err != nil {
		return e.fail(ctx, "statsCmd.Execute", app.LoadMessage(err), err)
	}
	summary, err := e.Services.Reflections.Summary(ctx)
	if err != nil {
		return e.fail(ctx, "statsCmd.Execute", app.LoadMessage(err), err)
	}

	fmt.Fprintf(e.Out, "Matching: %d of %d reflections (%d images stored)\n",
		result.Page.Total, summary.ReflectionCount, summary.ImageCount)
	writeStats(e.Out, result.Stats)
	fmt.Fprintf(e.Out, "Tags: %s\n", orDash(strings.Join(result.Tags, ", ")))
	return subcommands.ExitSuccess
}

type searchCmd struct {
	env     *Env
	filters models.ReflectionFilters
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the raw title and body text" }
func (*searchCmd) Usage() string {
	return `journal search [-tag <tag>] [-from <date>] [-to <date>] [-limit <n>] [<text>...]

  Lists the newest reflections whose title or stored body contains text
  (case-insensitive). Unlike list it matches any part of the body,
  including fields list has no filter for.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filters.Tag, "tag", "", "Only reflections carrying this tag")
	f.StringVar(&c.filters.StartDate, "from", "", "Created on or after this date (YYYY-MM-DD or RFC 3339)")
	f.StringVar(&c.filters.EndDate, "to", "", "Created on or before this date (YYYY-MM-DD or RFC 3339)")
	f.IntVar(&c.filters.Limit, "limit", 20, "Maximum number of results, 0 for all")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	if c.filters.Limit < 0 {
		return e.usage("-limit must not be negative")
	}

	filters := c.filters
	filters.Query = strings.Join(f.Args(), " ")
	items, err := e.Services.Reflections.List(ctx, filters)
	if err != nil {
		return e.fail(ctx, "searchCmd.Execute", app.LoadMessage(err), err)
	}

	writeReflections(e.Out, items)
	return subcommands.ExitSuccess
}
