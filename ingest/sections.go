// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package ingest extracts the section and room datasets from their zip
// corpora. Each loader call reads an archive once and returns a flat record
// vector for the query engine; nothing is retained afterwards.
package ingest

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/insight"
)

// sectionsFile is the shape of one JSON file in the sections archive.
type sectionsFile struct {
	Result []sectionJSON `json:"result"`
}

type sectionJSON struct {
	UUID       int     `json:"id"`
	ID         string  `json:"Course"`
	Title      string  `json:"Title"`
	Instructor string  `json:"Professor"`
	Dept       string  `json:"Subject"`
	Year       string  `json:"Year"`
	Avg        float32 `json:"Avg"`
	Pass       float32 `json:"Pass"`
	Fail       float32 `json:"Fail"`
	Audit      float32 `json:"Audit"`
}

// LoadSections reads every JSON file in the archive and flattens their
// "result" arrays into one section vector, in archive order. Files that fail
// to parse as JSON are skipped with a log line; I/O errors are fatal.
func LoadSections(path string, opt ...Option) ([]insight.Section, error) {
	const op = "ingest.LoadSections"
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open zip %q: %w", op, path, err)
	}
	defer archive.Close()

	var sections []insight.Section
	for _, f := range archive.File {
		data, err := readArchiveEntry(f)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read %q: %w", op, f.Name, err)
		}
		var cf sectionsFile
		if err := json.Unmarshal(data, &cf); err != nil {
			opts.withLogger.Warnw("skipping unparsable file", "file", f.Name, "error", err)
			continue
		}
		for _, c := range cf.Result {
			year, err := strconv.ParseFloat(c.Year, 32)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid year %q in %q: %w", op, c.Year, f.Name, err)
			}
			sections = append(sections, insight.Section{
				UUID:       strconv.Itoa(c.UUID),
				ID:         c.ID,
				Title:      c.Title,
				Instructor: c.Instructor,
				Dept:       c.Dept,
				Year:       float32(year),
				Avg:        c.Avg,
				Pass:       c.Pass,
				Fail:       c.Fail,
				Audit:      c.Audit,
			})
		}
	}
	opts.withLogger.Infow("loaded sections dataset", "path", path, "sections", len(sections))
	return sections, nil
}

func readArchiveEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
