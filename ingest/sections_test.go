// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/insight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type zipEntry struct {
	name    string
	content string
}

func writeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	path := filepath.Join(t.TempDir(), "dataset.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

const courseFile = `{"result":[
	{"id":32943,"Course":"310","Title":"intr sftwr eng","Professor":"holmes, reid","Subject":"cpsc","Year":"2014","Avg":78.69,"Pass":102,"Fail":1,"Audit":0},
	{"id":32944,"Course":"310","Title":"intr sftwr eng","Professor":"","Subject":"cpsc","Year":"2014","Avg":78.69,"Pass":102,"Fail":1,"Audit":2}
]}`

func TestLoadSections(t *testing.T) {
	t.Parallel()
	t.Run("success", func(t *testing.T) {
		path := writeZip(t, []zipEntry{
			{name: "courses/CPSC310", content: courseFile},
			{name: "courses/EMPTY", content: `{"result":[]}`},
		})
		sections, err := LoadSections(path)
		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, insight.Section{
			UUID:       "32943",
			ID:         "310",
			Title:      "intr sftwr eng",
			Instructor: "holmes, reid",
			Dept:       "cpsc",
			Year:       2014,
			Avg:        78.69,
			Pass:       102,
			Fail:       1,
			Audit:      0,
		}, sections[0])
		assert.Equal(t, "32944", sections[1].UUID)
	})
	t.Run("skips-unparsable-files", func(t *testing.T) {
		path := writeZip(t, []zipEntry{
			{name: "courses/BROKEN", content: `this is not json`},
			{name: "courses/CPSC310", content: courseFile},
		})
		sections, err := LoadSections(path, WithLogger(zap.NewNop().Sugar()))
		require.NoError(t, err)
		assert.Len(t, sections, 2)
	})
	t.Run("preserves-archive-order", func(t *testing.T) {
		first := `{"result":[{"id":1,"Course":"a","Title":"","Professor":"","Subject":"x","Year":"2000","Avg":1,"Pass":0,"Fail":0,"Audit":0}]}`
		second := `{"result":[{"id":2,"Course":"b","Title":"","Professor":"","Subject":"y","Year":"2001","Avg":2,"Pass":0,"Fail":0,"Audit":0}]}`
		path := writeZip(t, []zipEntry{
			{name: "courses/ONE", content: first},
			{name: "courses/TWO", content: second},
		})
		sections, err := LoadSections(path)
		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "1", sections[0].UUID)
		assert.Equal(t, "2", sections[1].UUID)
	})
	t.Run("err-missing-archive", func(t *testing.T) {
		_, err := LoadSections(filepath.Join(t.TempDir(), "nope.zip"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to open zip")
	})
	t.Run("err-invalid-year", func(t *testing.T) {
		path := writeZip(t, []zipEntry{
			{name: "courses/BADYEAR", content: `{"result":[{"id":1,"Course":"a","Title":"","Professor":"","Subject":"x","Year":"overall","Avg":1,"Pass":0,"Fail":0,"Audit":0}]}`},
		})
		_, err := LoadSections(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid year "overall"`)
	})
}
