// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"io"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// naValues are the cell values read as missing.
var naValues = []string{"", "NA", "NaN", "nan", "null", "<nil>"}

// ReadCSV reads a delimited table with a header row from r. Column
// types are inferred: integer columns become []int, or []float64 if
// any value is missing; float columns become []float64 with NaN for
// missing values; everything else becomes []string with "" for
// missing values.
func ReadCSV(r io.Reader, delim rune) (*table.Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	if df.Ncol() == 0 {
		return nil, errors.New("no columns")
	}
	var b table.Builder
	for _, name := range df.Names() {
		b.Add(name, column(df.Col(name)))
	}
	return b.Done(), nil
}

// column converts a gota series to a table column.
func column(s series.Series) table.Slice {
	nan := s.IsNaN()
	switch s.Type() {
	case series.Int:
		if xs, err := s.Int(); err == nil {
			return xs
		}
		return s.Float()
	case series.Float:
		return s.Float()
	case series.Bool:
		if bs, err := s.Bool(); err == nil {
			out := make([]string, len(bs))
			for i, b := range bs {
				if !nan[i] {
					out[i] = strconv.FormatBool(b)
				}
			}
			return out
		}
	}
	recs := s.Records()
	for i := range recs {
		if nan[i] {
			recs[i] = ""
		}
	}
	return recs
}
