// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/aclements/go-explore/explore"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	cursorRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// tui is a terminal UI for a session.
type tui struct {
	display *fileDisplay
}

func (u *tui) Interact(s *explore.Session, onChange func(explore.Change) error) error {
	m := newTUIModel(s, onChange, u.display)
	m.apply(explore.Change{})
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// The first rows of the terminal UI select session state. The
// selected plot's controls follow.
const (
	rowDataset = iota
	rowPlot
	rowRelaxed
	nSessionRows
)

type tuiModel struct {
	s        *explore.Session
	onChange func(explore.Change) error
	display  *fileDisplay

	cursor int
	files  []string
	err    error

	width int
}

func newTUIModel(s *explore.Session, onChange func(explore.Change) error, d *fileDisplay) *tuiModel {
	return &tuiModel{s: s, onChange: onChange, display: d, width: 80}
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *tuiModel) rows() int {
	return nSessionRows + len(m.s.Controls())
}

func (m *tuiModel) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case " ":
		m.toggle()
	case "[":
		m.slide(-1)
	case "]":
		m.slide(1)
	case "r":
		m.apply(explore.Change{})
	}
	return nil
}

// apply sends c to the session and records the result for the status
// line.
func (m *tuiModel) apply(c explore.Change) {
	m.files, m.err = m.display.render(m.s, m.onChange, c)
	// The plot's controls may have changed.
	if m.cursor >= m.rows() {
		m.cursor = m.rows() - 1
	}
}

// control returns the control under the cursor, or nil if the cursor
// is on a session row.
func (m *tuiModel) control() *explore.Control {
	if m.cursor < nSessionRows {
		return nil
	}
	ctls := m.s.Controls()
	return &ctls[m.cursor-nSessionRows]
}

// step returns the option delta places from cur in opts.
func step(opts []string, cur string, delta int) string {
	i := 0
	for j, o := range opts {
		if o == cur {
			i = j
			break
		}
	}
	i = (i + delta + len(opts)) % len(opts)
	return opts[i]
}

func (m *tuiModel) cycle(delta int) {
	switch m.cursor {
	case rowDataset:
		m.apply(explore.Change{Param: explore.ChangeDataset, Value: step(m.s.Datasets(), m.s.Dataset(), delta)})
		return
	case rowPlot:
		tags := explore.Tags()
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = string(t)
		}
		m.apply(explore.Change{Param: explore.ChangePlot, Value: step(names, string(m.s.Spec().Tag), delta)})
		return
	case rowRelaxed:
		m.toggle()
		return
	}
	c := m.control()
	switch c.Kind {
	case explore.ColumnParam, explore.ChoiceParam:
		if !c.Disabled {
			cur := m.s.Values().String(c.Name)
			m.apply(explore.Change{Param: c.Name, Value: step(c.Options, cur, delta)})
		}
	case explore.ToggleParam:
		m.toggle()
	case explore.SliderParam:
		m.slide(delta)
	}
}

func (m *tuiModel) toggle() {
	if m.cursor == rowRelaxed {
		m.apply(explore.Change{Param: explore.ChangeRelaxed, Value: !m.s.Relaxed()})
		return
	}
	if c := m.control(); c != nil && c.Kind == explore.ToggleParam {
		m.apply(explore.Change{Param: c.Name, Value: !m.s.Values().Bool(c.Name)})
	}
}

func (m *tuiModel) slide(delta int) {
	c := m.control()
	if c == nil || c.Kind != explore.SliderParam {
		return
	}
	inc := c.Step
	if inc <= 0 {
		inc = (c.Max - c.Min) / 100
	}
	v := m.s.Values().Float(c.Name) + float64(delta)*inc
	// Round to the step so repeated steps do not accumulate error.
	v = c.Min + math.Round((v-c.Min)/inc)*inc
	v = math.Max(c.Min, math.Min(c.Max, v))
	m.apply(explore.Change{Param: c.Name, Value: v})
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("explorer") + "\n\n")

	row := func(i int, label, value string, disabled bool) {
		l, v := labelStyle.Render(label), valueStyle.Render(value)
		if disabled {
			v = offStyle.Render(value)
		}
		if i == m.cursor {
			l = cursorRow.Width(14).Render("> " + label)
		}
		b.WriteString(l + v + "\n")
	}
	row(rowDataset, "dataset", m.s.Dataset(), false)
	row(rowPlot, "plot", string(m.s.Spec().Tag), false)
	row(rowRelaxed, "relaxed", explore.FormatValue(m.s.Relaxed()), false)
	vals := m.s.Values()
	for i, c := range m.s.Controls() {
		v := explore.FormatValue(vals[c.Name])
		if c.Disabled {
			v = "(none)"
		}
		row(nSessionRows+i, c.Name, v, c.Disabled)
	}
	b.WriteString("\n")

	if col := previewColumn(m.s); col != "" {
		w := m.width - 12
		if w > 70 {
			w = 70
		}
		if ys := density(explore.Floats(m.s.Data(), col), w); ys != nil {
			g := asciigraph.Plot(ys, asciigraph.Height(6), asciigraph.Width(w), asciigraph.Caption("density of "+col))
			b.WriteString(graphStyle.Render(g) + "\n\n")
		}
	}

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	case len(m.files) > 0:
		b.WriteString(okStyle.Render("wrote "+strings.Join(m.files, ", ")) + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ change  space toggle  [/] slide  r render  q quit"))
	return b.String()
}

// previewColumn returns the first numeric column selected by the
// current plot's column controls, or "".
func previewColumn(s *explore.Session) string {
	vals := s.Values()
	for _, c := range s.Controls() {
		if c.Kind != explore.ColumnParam || c.Disabled {
			continue
		}
		col := vals.String(c.Name)
		if explore.KindOf(s.Data(), col) == explore.KindNumeric {
			return col
		}
	}
	return ""
}

// density returns a Gaussian kernel density estimate of xs at n
// evenly spaced points spanning the data, or nil if xs has fewer than
// two distinct non-NaN values.
func density(xs []float64, n int) []float64 {
	var clean []float64
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			clean = append(clean, x)
		}
	}
	sample := stats.Sample{Xs: clean}
	lo, hi := sample.Bounds()
	if len(clean) < 2 || lo == hi || n < 2 {
		return nil
	}
	bw := stats.BandwidthScott(sample)
	if bw <= 0 {
		bw = (hi - lo) / 10
	}
	kde := stats.KDE{Sample: sample, Kernel: stats.GaussianKernel, Bandwidth: bw}
	pts := vec.Linspace(lo, hi, n)
	ys := make([]float64, n)
	for i, x := range pts {
		ys[i] = kde.PDF(x)
	}
	return ys
}
