// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the journal subcommands.
//
// Every command shares one [Env] holding the opened services. Commands
// print user-facing status lines (see package app) on Out/Err and log the
// underlying error with the logger attached to the context.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-trade-journal/internal/logger"
	"github.com/MKhiriev/go-trade-journal/internal/service"
	"github.com/MKhiriev/go-trade-journal/models"
)

// Browser runs the interactive browse screen.
type Browser interface {
	Browse(ctx context.Context) error
}

// Env is the state shared by all commands of one invocation.
type Env struct {
	Services  *service.Services
	Browser   Browser
	BuildInfo models.AppBuildInfo
	PageSize  int

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Now is the clock used for export file names and the daily checklist.
	Now func() time.Time

	input *bufio.Reader
}

// Register adds every journal command to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&versionCmd{env: env}, "")

	c.Register(&addCmd{env: env}, "reflections")
	c.Register(&showCmd{env: env}, "reflections")
	c.Register(&listCmd{env: env}, "reflections")
	c.Register(&statsCmd{env: env}, "reflections")
	c.Register(&searchCmd{env: env}, "reflections")
	c.Register(&editCmd{env: env}, "reflections")
	c.Register(&deleteCmd{env: env}, "reflections")
	c.Register(&browseCmd{env: env}, "reflections")

	c.Register(&templatesCmd{env: env}, "settings")
	c.Register(&pnlCmd{env: env}, "settings")

	c.Register(&exportCmd{env: env}, "data")
	c.Register(&importCmd{env: env}, "data")
	c.Register(&wipeCmd{env: env}, "data")
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return models.Now()
	}
	return e.Now()
}

// fail logs err and prints msg, the user-facing status line.
func (e *Env) fail(ctx context.Context, fn, msg string, err error) subcommands.ExitStatus {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg(msg)
	fmt.Fprintf(e.Err, "%s (%v)\n", msg, err)
	return subcommands.ExitFailure
}

func (e *Env) usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, format+"\n", args...)
	return subcommands.ExitUsageError
}

// confirm asks a yes/no question on Out and reads the answer from In. Only
// "y" and "yes" confirm.
func (e *Env) confirm(question string) bool {
	if e.input == nil {
		e.input = bufio.NewReader(e.In)
	}
	fmt.Fprintf(e.Out, "%s [y/N]: ", question)
	line, _ := e.input.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reflection id %q", s)
	}
	return id, nil
}
