// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-explore/explore"
)

// scriptUI drives a session from a script of control commands, one
// per line:
//
//	dataset NAME
//	plot TAG
//	relaxed on|off
//	set PARAM VALUE
//	render
//	show
//	datasets
//	plots
//
// Words are split with shell quoting rules and lines starting with #
// are comments. Every control change re-renders. Errors are reported
// to out and do not stop the script.
type scriptUI struct {
	r       io.Reader
	name    string
	out     io.Writer
	display *fileDisplay
}

func (u *scriptUI) Interact(s *explore.Session, onChange func(explore.Change) error) error {
	nerr := 0
	report := func(lineno int, err error) {
		nerr++
		if lineno == 0 {
			fmt.Fprintf(u.out, "%s: %v\n", u.name, err)
		} else {
			fmt.Fprintf(u.out, "%s:%d: %v\n", u.name, lineno, err)
		}
	}
	change := func(lineno int, c explore.Change) {
		files, err := u.display.render(s, onChange, c)
		for _, f := range files {
			fmt.Fprintf(u.out, "wrote %s\n", f)
		}
		if err != nil {
			report(lineno, err)
		}
	}

	change(0, explore.Change{})
	scanner := bufio.NewScanner(u.r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellquote.Split(line)
		if err != nil {
			report(lineno, err)
			continue
		}
		c, ok, err := u.command(s, words)
		if err != nil {
			report(lineno, err)
		} else if ok {
			change(lineno, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if nerr > 0 {
		return fmt.Errorf("%s: %d command(s) failed", u.name, nerr)
	}
	return nil
}

var usage = map[string]string{
	"dataset":  "dataset NAME",
	"plot":     "plot TAG",
	"relaxed":  "relaxed on|off",
	"set":      "set PARAM VALUE",
	"render":   "render",
	"show":     "show",
	"datasets": "datasets",
	"plots":    "plots",
}

// command runs one script command. It returns the change to apply,
// if any.
func (u *scriptUI) command(s *explore.Session, words []string) (c explore.Change, ok bool, err error) {
	cmd, args := words[0], words[1:]
	use, known := usage[cmd]
	if !known {
		return c, false, fmt.Errorf("unknown command %q", cmd)
	}
	nargs := len(strings.Fields(use)) - 1
	if len(args) != nargs {
		return c, false, fmt.Errorf("usage: %s", use)
	}

	switch cmd {
	case "dataset", "plot", "relaxed":
		c, err = s.ParseChange(cmd, args[0])
		return c, err == nil, err
	case "set":
		c, err = s.ParseChange(args[0], args[1])
		return c, err == nil, err
	case "render":
		return explore.Change{}, true, nil
	case "show":
		for _, line := range describe(s) {
			fmt.Fprintln(u.out, line)
		}
	case "datasets":
		for _, name := range s.Datasets() {
			fmt.Fprintln(u.out, mark(name == s.Dataset())+name)
		}
	case "plots":
		for _, tag := range explore.Tags() {
			fmt.Fprintln(u.out, mark(tag == s.Spec().Tag)+string(tag))
		}
	}
	return c, false, nil
}

func mark(current bool) string {
	if current {
		return "* "
	}
	return "  "
}

// describe returns the state of s as script commands that recreate
// it, with each control's legal values in a comment.
func describe(s *explore.Session) []string {
	relaxed := explore.FormatValue(s.Relaxed())
	lines := []string{
		shellquote.Join("dataset", s.Dataset()),
		shellquote.Join("plot", string(s.Spec().Tag)),
		shellquote.Join("relaxed", relaxed),
	}
	vals := s.Values()
	for _, c := range s.Controls() {
		line := shellquote.Join("set", c.Name, explore.FormatValue(vals[c.Name]))
		lines = append(lines, line+"  # "+options(&c))
	}
	return lines
}

// options describes the legal values of c.
func options(c *explore.Control) string {
	switch {
	case c.Disabled:
		return "disabled"
	case c.Kind == explore.ToggleParam:
		return "on or off"
	case c.Kind == explore.SliderParam:
		return fmt.Sprintf("%s to %s", explore.FormatValue(c.Min), explore.FormatValue(c.Max))
	}
	return shellquote.Join(c.Options...)
}
