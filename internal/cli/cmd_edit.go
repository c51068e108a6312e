package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/journal"
)

type editCmd struct {
	env     *Env
	changes keyValues
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a stored reflection" }
func (*editCmd) Usage() string {
	return `journal edit -set <field>=<value> [-set <field>=<value>]... <id>

  Merges the given fields into the stored body. Editing instrument,
  direction, entry, exit or quantity recalculates the PnL unless pnl is set
  too. Setting setupName renames the reflection; setting tags replaces its
  tag list.

  Fields: ` + strings.Join(journal.Fields, ", ") + `
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.changes = keyValues{}
	f.Var(c.changes, "set", "Field change as <field>=<value> (repeatable)")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	if f.NArg() != 1 {
		return e.usage("edit takes exactly one reflection id")
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return e.usage("%v", err)
	}
	if len(c.changes) == 0 {
		return e.usage("nothing to change, pass at least one -set <field>=<value>")
	}

	updated, err := e.Services.Reflections.Edit(ctx, id, c.changes)
	if err != nil {
		return e.fail(ctx, "editCmd.Execute", app.SaveMessage(err), err)
	}

	fmt.Fprintf(e.Out, "%s #%d %s\n", app.MsgReflectionUpdated, updated.ID, orDash(updated.Title))
	return subcommands.ExitSuccess
}
