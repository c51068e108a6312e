package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/export"
)

const stdio = "-"

type exportCmd struct {
	env    *Env
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export reflections as CSV or a JSON backup" }
func (*exportCmd) Usage() string {
	return `journal export [-format csv|json] [-o <file>|-]

  Writes every reflection as a CSV sheet or the whole database (reflections,
  images and settings) as a JSON backup. Without -o the file is named after
  today's date in the working directory; -o - writes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", string(export.FormatCSV), "Export format (csv, json)")
	f.StringVar(&c.output, "o", "", "Output file, - for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	format, err := export.ParseFormat(c.format)
	if err != nil {
		return e.usage("%v", err)
	}

	path := c.output
	if path == "" {
		path = format.FileName(e.now())
	}

	var w io.Writer = e.Out
	if path != stdio {
		file, err := os.Create(path)
		if err != nil {
			return e.fail(ctx, "exportCmd.Execute", app.MsgFailedToExport, err)
		}
		defer file.Close()
		w = file
	}

	if err = e.Services.Reflections.Export(ctx, w, format); err != nil {
		return e.fail(ctx, "exportCmd.Execute", app.MsgFailedToExport, err)
	}

	if path != stdio {
		fmt.Fprintf(e.Out, "Exported to %s\n", path)
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	env *Env
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a JSON backup" }
func (*importCmd) Usage() string {
	return `journal import <file>|-

  Re-creates every reflection and image of a JSON backup (with new ids) and
  restores its settings. Existing reflections are kept.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	if f.NArg() != 1 {
		return e.usage("import takes exactly one backup file")
	}

	var r io.Reader = e.In
	if path := f.Arg(0); path != stdio {
		file, err := os.Open(path)
		if err != nil {
			return e.fail(ctx, "importCmd.Execute", app.MsgFailedToImport, err)
		}
		defer file.Close()
		r = file
	}

	result, err := e.Services.Reflections.Import(ctx, r)
	if err != nil {
		return e.fail(ctx, "importCmd.Execute", app.MsgFailedToImport, err)
	}

	fmt.Fprintf(e.Out, "Imported %d reflections, %d images and %d settings.\n",
		result.Reflections, result.Images, result.Settings)
	return subcommands.ExitSuccess
}
