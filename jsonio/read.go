// SPDX-License-Identifier: MIT
// Package: jsonio
//
// read.go - decoding of the {"X": ..., "W": ...} input document.
//
// Contract:
//   - Both keys are required; unknown keys are ignored.
//   - Every row must be an array of numbers of the same length as row 0.
//   - Values are not checked for sign or integrality here; margins.Ingest
//     owns the count policy.

package jsonio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/katalvlaran/omegaset/matrix"
	"github.com/pkg/errors"
)

// input mirrors the document; RawMessage defers row decoding so that shape
// errors name the offending matrix.
type input struct {
	X json.RawMessage `json:"X"`
	W json.RawMessage `json:"W"`
}

// ReadInput decodes the candidate matrix X and the group matrix W from r.
//
// Errors:
//   - ErrMalformedInput for invalid JSON, a missing key, a non-array row,
//     ragged rows or an empty matrix.
//   - matrix errors for non-finite values.
func ReadInput(r io.Reader) (x, w *matrix.Dense, err error) {
	var in input
	dec := json.NewDecoder(r)
	if err = dec.Decode(&in); err != nil {
		return nil, nil, errors.Wrapf(ErrMalformedInput, "decode: %v", err)
	}
	if x, err = decodeMatrix("X", in.X); err != nil {
		return nil, nil, err
	}
	if w, err = decodeMatrix("W", in.W); err != nil {
		return nil, nil, err
	}

	return x, w, nil
}

// ReadInputFile opens path and calls ReadInput.
func ReadInputFile(path string) (x, w *matrix.Dense, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	x, w, err = ReadInput(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read %s", path)
	}

	return x, w, nil
}

// decodeMatrix turns a JSON array of rows into a Dense.
func decodeMatrix(name string, raw json.RawMessage) (*matrix.Dense, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: missing", name)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: not an array of rows", name)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "%s: no rows", name)
	}

	var cols int
	var data []float64
	for i, rawRow := range rows {
		var row []float64
		if err := json.Unmarshal(rawRow, &row); err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "%s: row %d is not a numeric array", name, i)
		}
		if i == 0 {
			cols = len(row)
			if cols == 0 {
				return nil, errors.Wrapf(ErrMalformedInput, "%s: row 0 is empty", name)
			}
			data = make([]float64, 0, len(rows)*cols)
		} else if len(row) != cols {
			return nil, errors.Wrapf(ErrMalformedInput, "%s: row %d has %d values, want %d", name, i, len(row), cols)
		}
		data = append(data, row...)
	}

	m, err := matrix.NewDenseFrom(len(rows), cols, data)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	return m, nil
}
