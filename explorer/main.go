// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command explorer interactively explores tabular datasets with
// statistical plots.
//
// explorer loads CSV, TSV, Go benchmark, and YAML manifest inputs,
// then lets the user pick a dataset, a plot type, and the plot's
// parameters. Every change re-renders the plot into a numbered SVG or
// PNG file in the output directory.
//
// When standard input is a terminal, explorer runs a terminal UI.
// Otherwise it reads control commands from standard input or from the
// -script file; see scriptUI for the command language. With -plot,
// explorer renders one plot and exits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/aclements/go-gg/gg"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/aclements/go-explore/chart"
	"github.com/aclements/go-explore/dataset"
	"github.com/aclements/go-explore/explore"
)

// setFlags collects repeated -set name=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, " ") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want name=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

func main() {
	log.SetPrefix("explorer: ")
	log.SetFlags(0)
	gg.Warning.SetOutput(log.Writer())

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagConfig     = flag.String("config", "", "read datasets and settings from YAML manifest `file`")
		flagSamples    = flag.Bool("samples", false, "add the built-in sample datasets")
		flagOut        = flag.String("o", dataset.DefaultOutput, "write figures to `dir`")
		flagWidth      = flag.Int("width", dataset.DefaultWidth, "figure width in pixels")
		flagHeight     = flag.Int("height", dataset.DefaultHeight, "figure height in pixels")
		flagScript     = flag.String("script", "", "read control commands from `file` (- for stdin)")
		flagTUI        = flag.Bool("tui", false, "use the terminal UI even if stdin is not a terminal")
		flagPlot       = flag.String("plot", "", "render plot type `tag` once and exit")
		flagDataset    = flag.String("dataset", "", "select dataset `name`")
		flagRelaxed    = flag.Bool("relaxed", false, "allow any column for every column parameter")
		flagSet        setFlags
	)
	flag.Var(&flagSet, "set", "set plot parameter `name=value` (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInputs may be .csv, .tsv, .bench or .txt (Go benchmark format), or .yaml manifests.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Load the manifest and let explicit flags override it.
	m := dataset.DefaultManifest()
	if *flagConfig != "" {
		var err error
		m, err = dataset.LoadManifest(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			m.Output.Dir = *flagOut
		case "width":
			m.Output.Width = *flagWidth
		case "height":
			m.Output.Height = *flagHeight
		case "samples":
			m.Samples = *flagSamples
		case "dataset":
			m.Session.Dataset = *flagDataset
		case "plot":
			m.Session.Plot = *flagPlot
		case "relaxed":
			m.Session.Relaxed = *flagRelaxed
		}
	})

	// Load datasets.
	datasets, err := m.Open()
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range flag.Args() {
		ds, err := dataset.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		datasets = append(datasets, ds...)
	}
	if len(datasets) == 0 {
		log.Print("no inputs; using sample datasets")
		datasets = dataset.Samples(1)
	}

	s, err := explore.NewSession(datasets)
	if err != nil {
		log.Fatal(err)
	}
	if err := initSession(s, m.Session, flagSet); err != nil {
		log.Fatal(err)
	}

	display, err := newFileDisplay(m.Output.Dir)
	if err != nil {
		log.Fatal(err)
	}
	charts := chart.New(display, m.Output.Width, m.Output.Height)

	// One-shot render.
	if *flagPlot != "" {
		files, err := display.render(s, func(explore.Change) error { return s.Render(charts) }, explore.Change{})
		for _, f := range files {
			fmt.Println(f)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	var ui explore.UI
	switch {
	case *flagScript != "":
		r, name := io.Reader(os.Stdin), "<stdin>"
		if *flagScript != "-" {
			f, err := os.Open(*flagScript)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			r, name = f, *flagScript
		}
		ui = &scriptUI{r: r, name: name, out: os.Stdout, display: display}
	case *flagTUI || term.IsTerminal(int(os.Stdin.Fd())):
		// Keep log output off the screen.
		f, err := tea.LogToFile(filepath.Join(m.Output.Dir, "explorer.log"), "explorer: ")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		gg.Warning.SetOutput(f)
		ui = &tui{display: display}
	default:
		ui = &scriptUI{r: os.Stdin, name: "<stdin>", out: os.Stdout, display: display}
	}
	if err := explore.Run(s, ui, charts); err != nil {
		log.Fatal(err)
	}
}

// initSession applies the initial session settings of a manifest,
// followed by name=value parameter settings, without rendering.
func initSession(s *explore.Session, cfg dataset.SessionConfig, sets []string) error {
	var changes [][2]string
	if cfg.Dataset != "" {
		changes = append(changes, [2]string{explore.ChangeDataset, cfg.Dataset})
	}
	if cfg.Relaxed {
		changes = append(changes, [2]string{explore.ChangeRelaxed, "on"})
	}
	if cfg.Plot != "" {
		changes = append(changes, [2]string{explore.ChangePlot, cfg.Plot})
	}
	names := make([]string, 0, len(cfg.Values))
	for name := range cfg.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		changes = append(changes, [2]string{name, cfg.Values[name]})
	}
	for _, set := range sets {
		name, value, _ := strings.Cut(set, "=")
		changes = append(changes, [2]string{name, value})
	}

	for _, ch := range changes {
		c, err := s.ParseChange(ch[0], ch[1])
		if err == nil {
			err = s.Apply(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
