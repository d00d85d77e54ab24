package jsonio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/omegaset/jsonio"
	"github.com/katalvlaran/omegaset/margins"
	"github.com/katalvlaran/omegaset/omega"
	"github.com/stretchr/testify/require"
)

const scenario = `{"X": [[6], [4]], "W": [[5, 5]]}`

func TestReadInput(t *testing.T) {
	x, w, err := jsonio.ReadInput(strings.NewReader(`{
		"X": [[1, 2, 3], [4, 5, 6]],
		"W": [[1, 0], [2, 5], [9, 0]],
		"comment": "ignored"
	}`))
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 3, x.Cols())
	require.Equal(t, 3, w.Rows())
	require.Equal(t, 2, w.Cols())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", x.String())
	require.Equal(t, "[1, 0]\n[2, 5]\n[9, 0]\n", w.String())
}

func TestReadInputMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"X": [[1]`},
		{"not an object", `[[1]]`},
		{"missing X", `{"W": [[1]]}`},
		{"missing W", `{"X": [[1]]}`},
		{"null W", `{"X": [[1]], "W": null}`},
		{"X not array", `{"X": 3, "W": [[1]]}`},
		{"no rows", `{"X": [], "W": [[1]]}`},
		{"empty row", `{"X": [[]], "W": [[1]]}`},
		{"row not array", `{"X": [1, 2], "W": [[1]]}`},
		{"non-numeric", `{"X": [["a"]], "W": [[1]]}`},
		{"ragged", `{"X": [[1, 2], [3]], "W": [[1]]}`},
		{"ragged W", `{"X": [[1]], "W": [[1], [2, 3]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := jsonio.ReadInput(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, jsonio.ErrMalformedInput)
		})
	}
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	x, w, err := jsonio.ReadInputFile(path)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 4}, x.RowSums())
	require.Equal(t, []float64{10}, w.RowSums())

	_, _, err = jsonio.ReadInputFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestScenarioRoundTrip reads the scenario, samples it and checks the
// written document keeps ballot indices and table shapes.
func TestScenarioRoundTrip(t *testing.T) {
	x, w, err := jsonio.ReadInput(strings.NewReader(scenario))
	require.NoError(t, err)
	p, err := margins.Ingest(x, w)
	require.NoError(t, err)
	sets, err := omega.Generate(context.Background(), p, 5, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, jsonio.WriteSets(&buf, sets))

	var got []jsonio.SetRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	want, err := jsonio.Records(sets)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded output differs (-want +got):\n%s", diff)
	}

	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].Ballot)
	require.Len(t, got[0].Matrices, 3)
	require.Equal(t, [][]float64{{3, 2}, {3, 2}}, got[0].Matrices[0])
	for _, m := range got[0].Matrices {
		require.Len(t, m, 2)
		for _, row := range m {
			require.Len(t, row, 2)
		}
	}
	require.True(t, strings.HasPrefix(buf.String(), `[{"b":0,"matrices":[[[3,2],[3,2]]`))
}

func TestRecordsSkipsNil(t *testing.T) {
	recs, err := jsonio.Records([]*omega.Set{nil})
	require.NoError(t, err)
	require.Empty(t, recs)

	var buf bytes.Buffer
	require.NoError(t, jsonio.WriteSets(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestWriteSetsFile(t *testing.T) {
	x, w, err := jsonio.ReadInput(strings.NewReader(scenario))
	require.NoError(t, err)
	p, err := margins.Ingest(x, w)
	require.NoError(t, err)
	sets, err := omega.Generate(context.Background(), p, 1, 2, omega.WithMode(omega.ModeShared))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, jsonio.WriteSetsFile(path, sets))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []jsonio.SetRecord
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Matrices, 2)

	err = jsonio.WriteSetsFile(filepath.Join(t.TempDir(), "no", "such", "dir.json"), sets)
	require.Error(t, err)
}
