package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
)

type deleteCmd struct {
	env *Env
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a reflection and its images" }
func (*deleteCmd) Usage() string {
	return `journal delete [-yes] <id>

  Permanently deletes a reflection. Asks for confirmation unless -yes is
  given.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	if f.NArg() != 1 {
		return e.usage("delete takes exactly one reflection id")
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return e.usage("%v", err)
	}

	item, err := e.Services.Reflections.Get(ctx, id)
	if err != nil {
		return e.fail(ctx, "deleteCmd.Execute", app.LoadMessage(err), err)
	}

	if !c.yes && !e.confirm(fmt.Sprintf("Delete reflection #%d %s?", id, orDash(item.Reflection.Title))) {
		fmt.Fprintln(e.Out, "Cancelled.")
		return subcommands.ExitSuccess
	}

	if err = e.Services.Reflections.Delete(ctx, id); err != nil {
		return e.fail(ctx, "deleteCmd.Execute", app.MsgUnableToDeleteReflection, err)
	}

	fmt.Fprintln(e.Out, app.MsgReflectionDeleted)
	return subcommands.ExitSuccess
}

type wipeCmd struct {
	env *Env
	yes bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "delete every reflection, image and setting" }
func (*wipeCmd) Usage() string {
	return `journal wipe [-yes]

  Removes the local database file. Asks for confirmation unless -yes is
  given. Export a backup first if the data may be needed again.
`
}

func (c *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Do not ask for confirmation")
}

func (c *wipeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env

	summary, err := e.Services.Reflections.Summary(ctx)
	if err != nil {
		return e.fail(ctx, "wipeCmd.Execute", app.MsgUnableToClearLocalData, err)
	}

	question := fmt.Sprintf("Delete %d reflections and %d images permanently?", summary.ReflectionCount, summary.ImageCount)
	if !c.yes && !e.confirm(question) {
		fmt.Fprintln(e.Out, "Cancelled.")
		return subcommands.ExitSuccess
	}

	if err = e.Services.Reflections.Wipe(ctx); err != nil {
		return e.fail(ctx, "wipeCmd.Execute", app.MsgUnableToClearLocalData, err)
	}

	fmt.Fprintln(e.Out, app.MsgLocalDataCleared)
	return subcommands.ExitSuccess
}
