// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tables for exploration from files.
//
// Supported formats are delimited text (CSV and TSV, with column
// types inferred), Go benchmark results, and YAML manifests that list
// other files.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-explore/explore"
)

// A FormatError reports a malformed line in an input file.
type FormatError struct {
	File string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Format names an input file format.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Bench    Format = "bench"
	Manifest Format = "manifest"
)

// FormatOf guesses the format of path from its extension. It returns
// "" if the extension is not recognized.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".tsv":
		return TSV
	case ".bench", ".txt":
		return Bench
	case ".yaml", ".yml":
		return Manifest
	}
	return ""
}

// NameOf returns the default dataset name for path: its base name
// without extension.
func NameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the datasets in path. A manifest may yield several
// datasets; other formats yield one, named by NameOf.
func Load(path string) ([]explore.Dataset, error) {
	format := FormatOf(path)
	if format == Manifest {
		m, err := LoadManifest(path)
		if err != nil {
			return nil, err
		}
		return m.Open()
	}
	ds, err := loadSource(Source{Name: NameOf(path), Path: path, Format: format})
	if err != nil {
		return nil, err
	}
	return []explore.Dataset{ds}, nil
}

// loadSource reads a single non-manifest dataset.
func loadSource(src Source) (explore.Dataset, error) {
	format := src.Format
	if format == "" {
		format = FormatOf(src.Path)
	}
	f, err := os.Open(src.Path)
	if err != nil {
		return explore.Dataset{}, err
	}
	defer f.Close()

	ds := explore.Dataset{Name: src.Name}
	switch format {
	case CSV, TSV:
		delim := ','
		if format == TSV {
			delim = '\t'
		}
		if src.Delimiter != "" {
			delim = []rune(src.Delimiter)[0]
		}
		ds.Table, err = ReadCSV(f, delim)
		if err != nil {
			err = &FormatError{File: src.Path, Msg: err.Error()}
		}
	case Bench:
		ds.Table, err = ReadBench(f, src.Path)
	case Manifest:
		err = fmt.Errorf("%s: manifests cannot be nested", src.Path)
	default:
		err = fmt.Errorf("%s: unknown format %q", src.Path, format)
	}
	if err != nil {
		return explore.Dataset{}, err
	}
	return ds, nil
}
