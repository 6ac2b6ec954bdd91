// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import "fmt"

// SectionPrefix scopes every external column name of the sections dataset.
const SectionPrefix = "sections_"

// Section is one course section record.
type Section struct {
	UUID       string
	ID         string
	Title      string
	Instructor string
	Dept       string
	Year       float32
	Avg        float32
	Pass       float32
	Fail       float32
	Audit      float32
}

// Get implements the Record capability for sections.
func (s Section) Get(column string) (Value, error) {
	const op = "insight.(Section).Get"
	switch column {
	case "sections_uuid":
		return NewStr(s.UUID), nil
	case "sections_id":
		return NewStr(s.ID), nil
	case "sections_title":
		return NewStr(s.Title), nil
	case "sections_instructor":
		return NewStr(s.Instructor), nil
	case "sections_dept":
		return NewStr(s.Dept), nil
	case "sections_year":
		return NewNum(s.Year)
	case "sections_avg":
		return NewNum(s.Avg)
	case "sections_pass":
		return NewNum(s.Pass)
	case "sections_fail":
		return NewNum(s.Fail)
	case "sections_audit":
		return NewNum(s.Audit)
	default:
		return Value{}, fmt.Errorf("%s: %w %q: fields must start with prefix %q", op, ErrFieldNotFound, column, SectionPrefix)
	}
}

// Columns implements the Record capability for sections.
func (s Section) Columns() []string {
	return []string{
		"sections_uuid",
		"sections_id",
		"sections_title",
		"sections_instructor",
		"sections_dept",
		"sections_year",
		"sections_avg",
		"sections_pass",
		"sections_fail",
		"sections_audit",
	}
}
