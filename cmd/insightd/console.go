// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/insight"
)

// consoleLoop reads a dataset selector from stdin, re-reads the query file on
// every iteration, and prints the result. It exists for poking at queries
// during development and exits when stdin closes.
func consoleLoop(
	queryFile string,
	sections func() ([]insight.Section, error),
	rooms func() ([]insight.Room, error),
) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(`Type "section" or "room"`)
		if !scanner.Scan() {
			return
		}
		var rows []insight.Row
		err := func() error {
			data, err := os.ReadFile(queryFile)
			if err != nil {
				return err
			}
			query, err := insight.ParseQuery(data)
			if err != nil {
				return err
			}
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "section":
				records, err := sections()
				if err != nil {
					return err
				}
				rows, err = insight.Execute(query, records)
				return err
			case "room":
				records, err := rooms()
				if err != nil {
					return err
				}
				rows, err = insight.Execute(query, records)
				return err
			default:
				return nil
			}
		}()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if rows == nil {
			continue
		}
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(string(out))
	}
}
