// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"
)

// A Dataset is a named table.
type Dataset struct {
	Name  string
	Table *table.Table
}

// Session holds the state of one interactive exploration: the
// selected dataset, plot type, relaxed mode, and parameter values.
//
// Every change that can alter a parameter's domain recomputes the
// controls from the current table and repairs values that are no
// longer legal, so the values of a Session are always legal for its
// current table.
type Session struct {
	datasets []Dataset
	byName   map[string]int

	dataset int
	data    *table.Table
	spec    *Spec
	relaxed bool

	controls []Control
	values   Values
}

// NewSession returns a session over datasets with the first dataset
// and the first plot type selected.
func NewSession(datasets []Dataset) (*Session, error) {
	if len(datasets) == 0 {
		return nil, errors.New("no datasets")
	}
	s := &Session{
		datasets: datasets,
		byName:   make(map[string]int),
		spec:     specs[0],
	}
	for i, ds := range datasets {
		if _, ok := s.byName[ds.Name]; ok {
			return nil, fmt.Errorf("duplicate dataset name %q", ds.Name)
		}
		if ds.Table == nil {
			return nil, fmt.Errorf("dataset %q has no table", ds.Name)
		}
		s.byName[ds.Name] = i
	}
	s.selectDataset(0)
	return s, nil
}

// Datasets returns the names of the session's datasets in order.
func (s *Session) Datasets() []string {
	names := make([]string, len(s.datasets))
	for i, ds := range s.datasets {
		names[i] = ds.Name
	}
	return names
}

// Dataset returns the name of the selected dataset.
func (s *Session) Dataset() string { return s.datasets[s.dataset].Name }

// Data returns the working copy of the selected dataset.
func (s *Session) Data() *table.Table { return s.data }

// Spec returns the selected plot type.
func (s *Session) Spec() *Spec { return s.spec }

// Relaxed reports whether relaxed mode is on.
func (s *Session) Relaxed() bool { return s.relaxed }

// Controls returns the controls of the selected plot type for the
// selected dataset.
func (s *Session) Controls() []Control { return s.controls }

// Values returns a copy of the current parameter values.
func (s *Session) Values() Values { return s.values.Copy() }

// Request returns the current selection as a Request.
func (s *Session) Request() Request {
	return Request{Tag: s.spec.Tag, Values: s.Values(), Relaxed: s.relaxed}
}

// SelectDataset selects the dataset called name.
func (s *Session) SelectDataset(name string) error {
	i, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("unknown dataset %q", name)
	}
	if i != s.dataset || s.data == nil {
		s.selectDataset(i)
	}
	return nil
}

func (s *Session) selectDataset(i int) {
	s.dataset = i
	s.data = Prepare(s.datasets[i].Table)
	s.recompute()
}

// SelectPlot selects the plot type tag.
func (s *Session) SelectPlot(tag Tag) error {
	spec, ok := Lookup(tag)
	if !ok {
		return fmt.Errorf("unknown plot type %q", tag)
	}
	if spec != s.spec {
		s.spec = spec
		s.recompute()
	}
	return nil
}

// SetRelaxed turns relaxed mode on or off.
func (s *Session) SetRelaxed(relaxed bool) {
	if relaxed != s.relaxed {
		s.relaxed = relaxed
		s.recompute()
	}
}

// Set sets parameter name of the selected plot type to v. It returns
// a *ValueError if v is not legal for the parameter.
func (s *Session) Set(name string, v interface{}) error {
	for i := range s.controls {
		c := &s.controls[i]
		if c.Name != name {
			continue
		}
		if !c.Allows(v) {
			return &ValueError{name, v}
		}
		s.values[name] = v
		return nil
	}
	return fmt.Errorf("plot %q has no parameter %q", s.spec.Tag, name)
}

// recompute rebuilds the controls and repairs the values.
func (s *Session) recompute() {
	s.controls = Controls(s.data, s.spec, s.relaxed)
	s.values = Resolve(s.controls, s.values)
}

// Render draws the current selection using p.
func (s *Session) Render(p Primitives) error {
	return Render(p, s.data, s.Request())
}

// Names of the Change parameters that select session state rather
// than plot parameters.
const (
	ChangeDataset = "dataset"
	ChangePlot    = "plot"
	ChangeRelaxed = "relaxed"
)

// A Change is a single control change reported by a UI.
type Change struct {
	// Param is ChangeDataset, ChangePlot, ChangeRelaxed, or the
	// name of a parameter of the selected plot type. An empty
	// Param changes nothing and only asks for a re-render.
	Param string
	Value interface{}
}

// ParseChange parses the text form of a change to param, which is
// ChangeDataset, ChangePlot, ChangeRelaxed, or a parameter of the
// selected plot type.
func (s *Session) ParseChange(param, value string) (Change, error) {
	switch param {
	case ChangeDataset:
		return Change{param, value}, nil
	case ChangePlot:
		return Change{param, Tag(value)}, nil
	case ChangeRelaxed:
		v, err := ParseValue(&Param{Name: param, Kind: ToggleParam}, value)
		return Change{param, v}, err
	}
	p := s.spec.Param(param)
	if p == nil {
		return Change{}, fmt.Errorf("plot %q has no parameter %q", s.spec.Tag, param)
	}
	v, err := ParseValue(p, value)
	return Change{param, v}, err
}

// Apply applies c to s.
func (s *Session) Apply(c Change) error {
	switch c.Param {
	case "":
		return nil
	case ChangeDataset:
		name, ok := c.Value.(string)
		if !ok {
			return &ValueError{c.Param, c.Value}
		}
		return s.SelectDataset(name)
	case ChangePlot:
		switch v := c.Value.(type) {
		case Tag:
			return s.SelectPlot(v)
		case string:
			return s.SelectPlot(Tag(v))
		}
		return &ValueError{c.Param, c.Value}
	case ChangeRelaxed:
		b, ok := c.Value.(bool)
		if !ok {
			return &ValueError{c.Param, c.Value}
		}
		s.SetRelaxed(b)
		return nil
	}
	return s.Set(c.Param, c.Value)
}

// A UI presents a session's controls and reports changes.
type UI interface {
	// Interact runs until the user ends the session. It calls
	// onChange once with an empty Change when it starts and then
	// once for every control change, one at a time, and displays
	// any error onChange returns. Interact returns nil when the
	// user ends the session normally.
	Interact(s *Session, onChange func(Change) error) error
}

// Explore runs an interactive session over datasets. Every change
// reported by ui is applied and followed by a full re-render using p.
// Rendering errors are handed back to ui for display; they do not end
// the session.
func Explore(datasets []Dataset, ui UI, p Primitives) error {
	s, err := NewSession(datasets)
	if err != nil {
		return err
	}
	return Run(s, ui, p)
}

// Run is like Explore, but starts from an existing session.
func Run(s *Session, ui UI, p Primitives) error {
	return ui.Interact(s, func(c Change) error {
		if err := s.Apply(c); err != nil {
			return err
		}
		return s.Render(p)
	})
}
