package cli

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
)

type showCmd struct {
	env      *Env
	jsonForm bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one reflection" }
func (*showCmd) Usage() string {
	return `journal show [-json] <id>

  Prints a reflection with its checklist, answers and attached images.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonForm, "json", false, "Print the stored reflection and images as JSON")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	if f.NArg() != 1 {
		return e.usage("show takes exactly one reflection id")
	}
	id, err := parseID(f.Arg(0))
	if err != nil {
		return e.usage("%v", err)
	}

	item, err := e.Services.Reflections.Get(ctx, id)
	if err != nil {
		return e.fail(ctx, "showCmd.Execute", app.LoadMessage(err), err)
	}

	if c.jsonForm {
		enc := json.NewEncoder(e.Out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(item); err != nil {
			return e.fail(ctx, "showCmd.Execute", app.MsgUnableToLoadReflections, err)
		}
		return subcommands.ExitSuccess
	}

	questions, err := e.Services.Templates.ReflectionQuestions(ctx)
	if err != nil {
		return e.fail(ctx, "showCmd.Execute", app.MsgUnableToLoadReflectionQuestions, err)
	}
	writeReflection(e.Out, item, questions)
	return subcommands.ExitSuccess
}
