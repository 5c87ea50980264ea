// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
)

// A benchRun is one benchmark result line.
type benchRun struct {
	name   string
	iters  int
	config map[string]string
	result map[string]float64
}

var benchConfigRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// ReadBench reads Go benchmark results from r and returns a table
// with one row per result line. The table has a "name" column, an
// "iterations" column, a column per configuration key (from
// configuration lines, name/key:value name components, and the
// -GOMAXPROCS suffix as "gomaxprocs"), and a float64 column per
// result unit. Configuration columns whose values are all numbers or
// durations are float64 (durations in seconds); others are strings.
// Absent values are NaN or "".
//
// file names r in errors.
func ReadBench(r io.Reader, file string) (*table.Table, error) {
	var runs []*benchRun
	block := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if m := benchConfigRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}
		b, err := parseBenchLine(line, block)
		if err != nil {
			return nil, &FormatError{File: file, Line: lineno, Msg: err.Error()}
		}
		if b != nil {
			runs = append(runs, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, &FormatError{File: file, Msg: "no benchmark results"}
	}
	return benchTable(runs), nil
}

// parseBenchLine parses a line that starts with "Benchmark". It
// returns nil, nil for lines that are not results, such as the bare
// names printed by go test -v.
func parseBenchLine(line string, block map[string]string) (*benchRun, error) {
	f := strings.Fields(line)
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil, nil
		}
	}
	if len(f) < 4 {
		return nil, nil
	}

	b := &benchRun{
		config: make(map[string]string, len(block)+1),
		result: make(map[string]float64),
	}
	for k, v := range block {
		b.config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			b.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	b.name = parts[0]
	for _, part := range parts[1:] {
		if i := strings.Index(part, ":"); i >= 0 {
			b.config[part[:i]] = part[i+1:]
		}
	}
	if _, ok := b.config["gomaxprocs"]; !ok {
		b.config["gomaxprocs"] = "1"
	}

	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("bad iteration count %q", f[1])
	}
	b.iters = n

	if len(f)%2 != 0 {
		return nil, fmt.Errorf("result %q has no unit", f[len(f)-1])
	}
	for i := 2; i+1 < len(f); i += 2 {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return nil, fmt.Errorf("bad %s value %q", f[i+1], f[i])
		}
		b.result[f[i+1]] = v
	}
	return b, nil
}

// parseNumber parses a configuration value as a number or a duration
// in seconds.
func parseNumber(s string) (float64, bool) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d.Seconds(), true
	}
	return 0, false
}

func benchTable(runs []*benchRun) *table.Table {
	names := make([]string, len(runs))
	iters := make([]int, len(runs))
	configs, results := map[string]bool{}, map[string]bool{}
	for i, b := range runs {
		names[i], iters[i] = b.name, b.iters
		for k := range b.config {
			configs[k] = true
		}
		for k := range b.result {
			results[k] = true
		}
	}

	tb := new(table.Builder).Add("name", names)
	for _, key := range sortedKeys(configs) {
		numeric := true
		for _, b := range runs {
			if v, ok := b.config[key]; ok {
				if _, ok := parseNumber(v); !ok {
					numeric = false
					break
				}
			}
		}
		if numeric {
			col := make([]float64, len(runs))
			for i, b := range runs {
				col[i] = math.NaN()
				if v, ok := b.config[key]; ok {
					col[i], _ = parseNumber(v)
				}
			}
			tb.Add(key, col)
		} else {
			col := make([]string, len(runs))
			for i, b := range runs {
				col[i] = b.config[key]
			}
			tb.Add(key, col)
		}
	}
	tb.Add("iterations", iters)
	for _, unit := range sortedKeys(results) {
		col := make([]float64, len(runs))
		for i, b := range runs {
			v, ok := b.result[unit]
			if !ok {
				v = math.NaN()
			}
			col[i] = v
		}
		tb.Add(unit, col)
	}
	return tb.Done()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
