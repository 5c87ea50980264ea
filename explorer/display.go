// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-explore/chart"
	"github.com/aclements/go-explore/explore"
)

// fileDisplay writes figures to numbered files in a directory. The
// figures of one render share a number and are named
// NNNN-<tag>.ext, NNNN-<tag>-1.ext, and so on.
type fileDisplay struct {
	dir string

	// tag returns the plot type being rendered.
	tag func() explore.Tag

	seq int

	// files lists the files written by the current render.
	files []string
}

func newFileDisplay(dir string) (*fileDisplay, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	return &fileDisplay{dir: dir}, nil
}

// render calls onChange(c) and returns the files it wrote.
func (d *fileDisplay) render(s *explore.Session, onChange func(explore.Change) error, c explore.Change) ([]string, error) {
	d.tag = func() explore.Tag { return s.Spec().Tag }
	d.files = nil
	err := onChange(c)
	return d.files, err
}

func (d *fileDisplay) Show(f *chart.Figure) error {
	if len(d.files) == 0 {
		d.seq++
	}
	tag := "plot"
	if d.tag != nil {
		tag = strings.Join(strings.Fields(string(d.tag())), "")
	}
	name := fmt.Sprintf("%04d-%s", d.seq, tag)
	if k := len(d.files); k > 0 {
		name += fmt.Sprintf("-%d", k)
	}
	path := filepath.Join(d.dir, name+f.Ext())

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	d.files = append(d.files, path)
	return nil
}
