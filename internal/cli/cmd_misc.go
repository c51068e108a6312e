package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/futures"
)

type pnlCmd struct {
	env       *Env
	symbol    string
	direction string
	entry     string
	exit      string
	quantity  string
	contracts bool
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "calculate the PnL of a futures trade" }
func (*pnlCmd) Usage() string {
	return `journal pnl -symbol <sym> -direction <long|short> -entry <price> -exit <price> -qty <n>
journal pnl -contracts

  Calculates ticks * tick value * quantity for a known contract, or lists
  the contract reference table.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Contract symbol, e.g. ES")
	f.StringVar(&c.direction, "direction", "long", "Trade direction (long, short)")
	f.StringVar(&c.entry, "entry", "", "Entry price")
	f.StringVar(&c.exit, "exit", "", "Exit price")
	f.StringVar(&c.quantity, "qty", "1", "Number of contracts")
	f.BoolVar(&c.contracts, "contracts", false, "List the known contracts")
}

func (c *pnlCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env

	if c.contracts {
		tw := tabwriter.NewWriter(e.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SYMBOL\tTICK SIZE\tTICK VALUE\tEXCHANGE\tNAME")
		for _, symbol := range futures.Symbols() {
			ct, _ := futures.Lookup(symbol)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ct.Symbol, ct.TickSize, ct.TickValue.StringFixed(2), ct.Exchange, ct.Name)
		}
		tw.Flush()
		return subcommands.ExitSuccess
	}

	if _, ok := futures.Lookup(c.symbol); !ok {
		return e.usage("unknown contract symbol %q, see journal pnl -contracts", c.symbol)
	}
	pnl, ok := futures.Calculate(c.symbol, c.direction, c.entry, c.exit, c.quantity)
	if !ok {
		return e.usage("cannot calculate: direction must be long or short, prices numeric and quantity positive")
	}

	fmt.Fprintf(e.Out, "PnL: %s\n", pnl.StringFixed(2))
	return subcommands.ExitSuccess
}

type browseCmd struct {
	env *Env
}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "browse reflections interactively" }
func (*browseCmd) Usage() string {
	return `journal browse

  Opens the full-screen browser: filter with /, cycle tags with t, open a
  reflection with enter, copy it with c and delete it with d.
`
}

func (*browseCmd) SetFlags(*flag.FlagSet) {}

func (c *browseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.env.Browser.Browse(ctx); err != nil {
		return c.env.fail(ctx, "browseCmd.Execute", app.MsgUnableToLoadReflections, err)
	}
	return subcommands.ExitSuccess
}

type versionCmd struct {
	env *Env
}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print build information" }
func (*versionCmd) Usage() string          { return "journal version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprint(c.env.Out, c.env.BuildInfo.String())
	return subcommands.ExitSuccess
}
