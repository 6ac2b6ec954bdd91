// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import "fmt"

// RoomPrefix scopes every external column name of the rooms dataset.
const RoomPrefix = "rooms_"

// Room is one campus room record. Name is always Shortname + "_" + Number.
type Room struct {
	Fullname  string
	Shortname string
	Number    string
	Name      string
	Address   string
	Seats     float32
	Type      string
	Furniture string
	Href      string
}

// Get implements the Record capability for rooms.
func (r Room) Get(column string) (Value, error) {
	const op = "insight.(Room).Get"
	switch column {
	case "rooms_fullname":
		return NewStr(r.Fullname), nil
	case "rooms_shortname":
		return NewStr(r.Shortname), nil
	case "rooms_number":
		return NewStr(r.Number), nil
	case "rooms_name":
		return NewStr(r.Name), nil
	case "rooms_address":
		return NewStr(r.Address), nil
	case "rooms_seats":
		return NewNum(r.Seats)
	case "rooms_type":
		return NewStr(r.Type), nil
	case "rooms_furniture":
		return NewStr(r.Furniture), nil
	case "rooms_href":
		return NewStr(r.Href), nil
	default:
		return Value{}, fmt.Errorf("%s: %w %q: fields must start with prefix %q", op, ErrFieldNotFound, column, RoomPrefix)
	}
}

// Columns implements the Record capability for rooms.
func (r Room) Columns() []string {
	return []string{
		"rooms_fullname",
		"rooms_shortname",
		"rooms_number",
		"rooms_name",
		"rooms_address",
		"rooms_seats",
		"rooms_type",
		"rooms_furniture",
		"rooms_href",
	}
}
