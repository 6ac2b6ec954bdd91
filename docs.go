// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
Package insight provides an in-memory query engine over datasets of
prefixed-column records, driven by a declarative JSON query language.

A query is a JSON object with a WHERE filter tree, an OPTIONS block naming the
projected columns and an optional order, and an optional TRANSFORMATIONS block
for grouping and aggregation:

	{"WHERE":{"GT":{"sections_avg":97}},
	 "OPTIONS":{"COLUMNS":["sections_dept","sections_avg"],
	            "ORDER":"sections_avg"}}

Filters can be combined using: AND, OR, NOT. The comparison operators LT, GT
and EQ apply to numeric columns (EQ within a tolerance of 1e-4) and IS applies
to string columns, with * wildcards permitted as the leading and/or trailing
character of the pattern.

ORDER is either a single column name (ascending) or {"dir":"UP"|"DOWN",
"keys":[...]} for a stable multi-key sort. TRANSFORMATIONS partitions rows by
the GROUP columns and computes one column per APPLY rule using COUNT, AVG,
SUM, MAX or MIN.

Execution is bounded: a query whose filter passes more than 5000 records
fails rather than returning a truncated result.
*/
package insight
