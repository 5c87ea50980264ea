// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// A Control is a parameter together with its legal values for a
// particular table and relaxed-mode setting.
type Control struct {
	Param

	// Options lists the legal values of a ColumnParam or
	// ChoiceParam. It is nil for toggles and sliders.
	Options []string

	// Disabled is set for a ColumnParam with no legal columns.
	Disabled bool
}

// Allows reports whether v is a legal value for c.
func (c *Control) Allows(v interface{}) bool {
	switch c.Kind {
	case ColumnParam, ChoiceParam:
		s, ok := v.(string)
		if !ok {
			return false
		}
		if c.Disabled {
			return s == ""
		}
		for _, o := range c.Options {
			if o == s {
				return true
			}
		}
		return false
	case ToggleParam:
		_, ok := v.(bool)
		return ok
	case SliderParam:
		f, ok := v.(float64)
		return ok && f >= c.Min && f <= c.Max
	}
	return false
}

// Domain returns the legal column names for parameter p of a plot
// drawn from t. When relaxed is set, every column is legal.
func Domain(t *table.Table, p *Param, relaxed bool) []string {
	if relaxed {
		return Classify(t, Any)
	}
	return Classify(t, p.Category)
}

// Controls returns the controls of plot type spec for table t.
func Controls(t *table.Table, spec *Spec, relaxed bool) []Control {
	ctls := make([]Control, len(spec.Params))
	for i, p := range spec.Params {
		c := Control{Param: p}
		switch p.Kind {
		case ColumnParam:
			c.Options = Domain(t, &spec.Params[i], relaxed)
			c.Disabled = len(c.Options) == 0
		case ChoiceParam:
			c.Options = p.Choices
		}
		ctls[i] = c
	}
	return ctls
}

// Domains returns the legal columns of every column parameter of spec
// for table t, keyed by parameter name.
func Domains(t *table.Table, spec *Spec, relaxed bool) map[string][]string {
	doms := make(map[string][]string)
	for i, p := range spec.Params {
		if p.Kind == ColumnParam {
			doms[p.Name] = Domain(t, &spec.Params[i], relaxed)
		}
	}
	return doms
}

// Values holds parameter values by parameter name. Column and choice
// parameters are strings, toggles are bools, and sliders are
// float64s.
type Values map[string]interface{}

// String returns the string value of name, or "".
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the bool value of name, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Float returns the float64 value of name, or 0.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Int parses the value of the choice parameter name as an integer.
func (v Values) Int(name string) int {
	n, err := strconv.Atoi(v.String(name))
	if err != nil {
		panic(fmt.Sprintf("parameter %s: %v", name, err))
	}
	return n
}

// Copy returns a shallow copy of v.
func (v Values) Copy() Values {
	nv := make(Values, len(v))
	for k, x := range v {
		nv[k] = x
	}
	return nv
}

// defaultValue returns the initial value for c: the parameter's
// default if it is legal, otherwise the first legal option.
func defaultValue(c *Control) interface{} {
	switch c.Kind {
	case ColumnParam:
		if c.Disabled {
			return ""
		}
		return c.Options[0]
	case ChoiceParam:
		if c.Default != nil && c.Allows(c.Default) {
			return c.Default
		}
		return c.Options[0]
	case ToggleParam:
		b, _ := c.Default.(bool)
		return b
	case SliderParam:
		if f, ok := c.Default.(float64); ok {
			return f
		}
		return c.Min
	}
	return nil
}

// Resolve returns values for ctls, keeping each value in prev that is
// still legal and replacing the rest with defaults.
func Resolve(ctls []Control, prev Values) Values {
	vals := make(Values, len(ctls))
	for i := range ctls {
		c := &ctls[i]
		if v, ok := prev[c.Name]; ok && c.Allows(v) {
			vals[c.Name] = v
		} else {
			vals[c.Name] = defaultValue(c)
		}
	}
	return vals
}

// ValueError reports a value that is not legal for a parameter.
type ValueError struct {
	Param string
	Value interface{}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v is not a legal value for %s", e.Value, e.Param)
}

// ParseValue converts the text form of a value for parameter p to the
// value's Go type.
func ParseValue(p *Param, s string) (interface{}, error) {
	switch p.Kind {
	case ToggleParam:
		switch s {
		case "on", "yes":
			return true, nil
		case "off", "no":
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, &ValueError{p.Name, s}
		}
		return b, nil
	case SliderParam:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ValueError{p.Name, s}
		}
		return f, nil
	}
	return s, nil
}

// FormatValue returns the text form of v as accepted by ParseValue.
func FormatValue(v interface{}) string {
	switch v := v.(type) {
	case bool:
		if v {
			return "on"
		}
		return "off"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	}
	return fmt.Sprint(v)
}
