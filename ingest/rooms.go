// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ingest

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/insight"
)

// buildingEntry is one row of the index table: a building code, its full
// name, and the link to its per-building page.
type buildingEntry struct {
	code string
	name string
	href string
}

// LoadRooms reads the campus archive: the buildings table in index.html (or
// index.htm) names every building, and each linked building page contributes
// the shared address plus one room per row of its rooms table. Row order is
// preserved from the source. Buildings whose page is missing from the archive
// are skipped.
func LoadRooms(path string, opt ...Option) ([]insight.Room, error) {
	const op = "ingest.LoadRooms"
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open zip %q: %w", op, path, err)
	}
	defer archive.Close()

	index, err := readIndex(&archive.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	buildings, err := parseIndexBuildings(index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rooms []insight.Room
	for _, b := range buildings {
		filename := filenameFromLink(b.href)
		if filename == "" {
			continue
		}
		content, ok := readBuildingFile(&archive.Reader, filename)
		if !ok {
			opts.withLogger.Warnw("skipping building without a page", "building", b.code, "file", filename)
			continue
		}
		parsed, err := parseBuildingRooms(content, b)
		if err != nil {
			return nil, fmt.Errorf("%s: building %q: %w", op, b.code, err)
		}
		rooms = append(rooms, parsed...)
	}
	opts.withLogger.Infow("loaded rooms dataset", "path", path, "rooms", len(rooms))
	return rooms, nil
}

// readIndex returns the content of index.html or index.htm.
func readIndex(archive *zip.Reader) (string, error) {
	const op = "ingest.readIndex"
	for _, name := range []string{"index.html", "index.htm"} {
		for _, f := range archive.File {
			if f.Name == name {
				data, err := readArchiveEntry(f)
				if err != nil {
					return "", fmt.Errorf("%s: failed to read %q: %w", op, name, err)
				}
				return string(data), nil
			}
		}
	}
	return "", fmt.Errorf("%s: could not find index.html or index.htm in the archive", op)
}

// readBuildingFile resolves a building page by exact archive name, then by
// suffix in case the page sits in a subdirectory.
func readBuildingFile(archive *zip.Reader, filename string) (string, bool) {
	for _, f := range archive.File {
		if f.Name == filename {
			if data, err := readArchiveEntry(f); err == nil {
				return string(data), true
			}
		}
	}
	for _, f := range archive.File {
		if strings.HasSuffix(f.Name, filename) {
			if data, err := readArchiveEntry(f); err == nil {
				return string(data), true
			}
		}
	}
	return "", false
}

func parseIndexBuildings(html string) ([]buildingEntry, error) {
	const op = "ingest.parseIndexBuildings"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse index: %w", op, err)
	}
	var buildings []buildingEntry
	doc.Find("table.views-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("td.views-field-title a").First()
		if link.Length() == 0 {
			return
		}
		href, _ := link.Attr("href")
		buildings = append(buildings, buildingEntry{
			code: strings.TrimSpace(row.Find("td.views-field-field-building-code").First().Text()),
			name: strings.TrimSpace(link.Text()),
			href: href,
		})
	})
	return buildings, nil
}

// filenameFromLink strips the directory part of an index link, which is
// shaped ./campus/discover/buildings-and-classrooms/CODE.htm.
func filenameFromLink(link string) string {
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}

func parseBuildingRooms(html string, b buildingEntry) ([]insight.Room, error) {
	const op = "ingest.parseBuildingRooms"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse building page: %w", op, err)
	}
	address := strings.TrimSpace(doc.Find("#building-info .building-field .field-content").First().Text())

	var rooms []insight.Room
	doc.Find("table.views-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		numberLink := row.Find("td.views-field-field-room-number a").First()
		number := strings.TrimSpace(numberLink.Text())
		href, _ := numberLink.Attr("href")
		rooms = append(rooms, insight.Room{
			Fullname:  b.name,
			Shortname: b.code,
			Number:    number,
			Name:      b.code + "_" + number,
			Address:   address,
			Seats:     parseSeats(row.Find("td.views-field-field-room-capacity").First().Text()),
			Type:      strings.TrimSpace(row.Find("td.views-field-field-room-type").First().Text()),
			Furniture: strings.TrimSpace(row.Find("td.views-field-field-room-furniture").First().Text()),
			Href:      href,
		})
	})
	return rooms, nil
}

// parseSeats converts a capacity cell to a number, defaulting to 0 when the
// cell is missing or not numeric.
func parseSeats(text string) float32 {
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0
	}
	return float32(n)
}
