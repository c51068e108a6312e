package cli

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/app"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

type templatesCmd struct {
	env *Env
}

func (*templatesCmd) Name() string     { return "templates" }
func (*templatesCmd) Synopsis() string { return "manage checklist, questions, targets and sections" }
func (*templatesCmd) Usage() string {
	return `journal templates checklist [add <text> | remove <id> | up <id> | down <id> | reset]
journal templates questions [add <label> <placeholder> | remove <id> | up <id> | down <id> | reset]
journal templates targets [add <name> | remove <name> | reset]
journal templates sections [show <id> | hide <id> | up <id> | down <id> | reset]
journal templates blocking [on | off]
journal templates complete
journal templates due

  Without an action the current values are printed. "blocking on" refuses
  new reflections until the daily checklist was completed; "complete"
  marks today's checklist as done.
`
}

func (*templatesCmd) SetFlags(*flag.FlagSet) {}

func (c *templatesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e := c.env
	args := f.Args()
	if len(args) == 0 {
		return e.usage("templates needs one of: checklist, questions, targets, sections, blocking, complete, due")
	}

	var err error
	var ok bool
	switch kind, rest := args[0], args[1:]; kind {
	case "checklist":
		ok, err = c.checklist(ctx, rest)
	case "questions":
		ok, err = c.questions(ctx, rest)
	case "targets":
		ok, err = c.targets(ctx, rest)
	case "sections":
		ok, err = c.sections(ctx, rest)
	case "blocking":
		ok, err = c.blocking(ctx, rest)
	case "complete":
		if ok = len(rest) == 0; ok {
			if err = e.Services.Templates.MarkChecklistComplete(ctx, e.now()); err == nil {
				fmt.Fprintln(e.Out, "Daily checklist completed.")
			}
		}
	case "due":
		if ok = len(rest) == 0; ok {
			var due bool
			if due, err = e.Services.Templates.ChecklistDue(ctx, e.now()); err == nil {
				fmt.Fprintf(e.Out, "Daily checklist due: %t\n", due)
			}
		}
	default:
		return e.usage("unknown template kind %q", kind)
	}

	if err != nil {
		return e.fail(ctx, "templatesCmd.Execute", templateMessage(args[0]), err)
	}
	if !ok {
		return e.usage("invalid arguments: %s", strings.Join(args, " "))
	}
	return subcommands.ExitSuccess
}

func templateMessage(kind string) string {
	if kind == "questions" {
		return app.MsgUnableToSaveReflectionQuestions
	}
	return app.MsgUnableToSaveChecklistTemplate
}

// action splits args into a verb and its operands. The verb is empty when
// args is.
func action(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

func (c *templatesCmd) checklist(ctx context.Context, args []string) (bool, error) {
	t := c.env.Services.Templates
	var items []models.ChecklistTemplateItem
	var err error

	switch verb, rest := action(args); verb {
	case "":
		items, err = t.ChecklistTemplate(ctx)
	case "add":
		if len(rest) != 1 {
			return false, nil
		}
		items, err = t.AddChecklistItem(ctx, rest[0])
	case "remove":
		if len(rest) != 1 {
			return false, nil
		}
		items, err = t.RemoveChecklistItem(ctx, rest[0])
	case "up", "down":
		if len(rest) != 1 {
			return false, nil
		}
		items, err = t.MoveChecklistItem(ctx, rest[0], moveDelta(verb))
	case "reset":
		items, err = t.SaveChecklistTemplate(ctx, service.DefaultChecklistTemplate())
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}

	if len(args) > 0 {
		fmt.Fprintln(c.env.Out, app.MsgChecklistTemplateSaved)
	}
	for _, item := range items {
		fmt.Fprintf(c.env.Out, "%s\t%s\n", item.ID, item.Text)
	}
	return true, nil
}

func (c *templatesCmd) questions(ctx context.Context, args []string) (bool, error) {
	t := c.env.Services.Templates
	var questions []models.ReflectionQuestion
	var err error

	switch verb, rest := action(args); verb {
	case "":
		questions, err = t.ReflectionQuestions(ctx)
	case "add":
		if len(rest) != 2 {
			return false, nil
		}
		questions, err = t.AddReflectionQuestion(ctx, rest[0], rest[1])
	case "remove":
		if len(rest) != 1 {
			return false, nil
		}
		questions, err = t.RemoveReflectionQuestion(ctx, rest[0])
	case "up", "down":
		if len(rest) != 1 {
			return false, nil
		}
		questions, err = t.MoveReflectionQuestion(ctx, rest[0], moveDelta(verb))
	case "reset":
		questions, err = t.SaveReflectionQuestions(ctx, service.DefaultReflectionQuestions())
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}

	if len(args) > 0 {
		fmt.Fprintln(c.env.Out, app.MsgReflectionQuestionsSaved)
	}
	for _, q := range questions {
		fmt.Fprintf(c.env.Out, "%s\t%s\t(%s)\n", q.ID, q.Label, q.Placeholder)
	}
	return true, nil
}

func (c *templatesCmd) targets(ctx context.Context, args []string) (bool, error) {
	t := c.env.Services.Templates
	targets, err := t.TargetTemplates(ctx)
	if err != nil {
		return true, err
	}

	verb, rest := action(args)
	ok := len(rest) == 1
	switch verb {
	case "":
	case "add":
		if !ok {
			return false, nil
		}
		targets, err = t.SaveTargetTemplates(ctx, append(targets, rest[0]))
	case "remove":
		if !ok {
			return false, nil
		}
		targets, err = t.SaveTargetTemplates(ctx, slices.DeleteFunc(targets, func(s string) bool { return s == rest[0] }))
	case "reset":
		targets, err = t.SaveTargetTemplates(ctx, service.DefaultTargetTemplates())
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}

	for _, target := range targets {
		fmt.Fprintln(c.env.Out, target)
	}
	return true, nil
}

func (c *templatesCmd) sections(ctx context.Context, args []string) (bool, error) {
	t := c.env.Services.Templates
	sections, err := t.SectionOrder(ctx)
	if err != nil {
		return true, err
	}

	verb, rest := action(args)
	if verb != "" && verb != "reset" && len(rest) != 1 {
		return false, nil
	}

	switch verb {
	case "":
	case "show", "hide":
		i := slices.IndexFunc(sections, func(s models.SectionConfig) bool { return s.ID == rest[0] })
		if i < 0 {
			return false, nil
		}
		sections[i].Visible = verb == "show"
		sections, err = t.SaveSectionOrder(ctx, sections)
	case "up", "down":
		i := slices.IndexFunc(sections, func(s models.SectionConfig) bool { return s.ID == rest[0] })
		if i < 0 {
			return false, nil
		}
		if j := i + moveDelta(verb); j >= 0 && j < len(sections) {
			sections[i], sections[j] = sections[j], sections[i]
		}
		sections, err = t.SaveSectionOrder(ctx, sections)
	case "reset":
		sections, err = t.SaveSectionOrder(ctx, service.DefaultSectionOrder())
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}

	for _, s := range sections {
		state := "visible"
		if !s.Visible {
			state = "hidden"
		}
		fmt.Fprintf(c.env.Out, "%s\t%s\t%s\n", s.ID, s.Label, state)
	}
	return true, nil
}

func (c *templatesCmd) blocking(ctx context.Context, args []string) (bool, error) {
	t := c.env.Services.Templates
	switch {
	case len(args) == 0:
	case len(args) == 1 && (args[0] == "on" || args[0] == "off"):
		if err := t.SetChecklistBlocking(ctx, args[0] == "on"); err != nil {
			return true, err
		}
	default:
		return false, nil
	}

	blocking, err := t.ChecklistBlocking(ctx)
	if err != nil {
		return true, err
	}
	fmt.Fprintf(c.env.Out, "Checklist blocking: %t\n", blocking)
	return true, nil
}

func moveDelta(verb string) int {
	if verb == "up" {
		return -1
	}
	return 1
}
