// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cqlsh

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cqlgate/cqlgate/gateway"
)

var (
	ruleRe    = regexp.MustCompile(`^-+(\+-+)*$`)
	trailerRe = regexp.MustCompile(`^\((\d+) rows\)$`)
)

// Parse converts cqlsh tabular output into a gateway result. The tool prints
// a header row, a dashed rule, one line per row and a "(N rows)" trailer:
//
//	 id | name
//	----+------
//	  1 | anne
//
//	(1 rows)
//
// Statements without a result set (INSERT, CONSISTENCY, ...) print nothing,
// in which case an empty result is returned.
func Parse(out string) gateway.Result {
	lines := strings.Split(out, "\n")

	res := gateway.Result{Rows: []map[string]interface{}{}}

	ruleIdx := -1
	for i, line := range lines {
		if ruleRe.MatchString(strings.TrimSpace(line)) && i > 0 {
			ruleIdx = i
			break
		}
	}
	if ruleIdx < 1 {
		return res
	}

	names := splitRow(lines[ruleIdx-1])
	for _, name := range names {
		res.Columns = append(res.Columns, gateway.Column{Name: name})
	}

	for _, line := range lines[ruleIdx+1:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		cells := splitRow(line)
		row := map[string]interface{}{}
		for i, name := range names {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		res.Rows = append(res.Rows, row)
	}
	res.Count = uint64(len(res.Rows))

	// Prefer the trailer count: rows can be elided on very wide output.
	for _, line := range lines[ruleIdx+1:] {
		if m := trailerRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if n, err := strconv.ParseUint(m[1], 10, 64); err == nil {
				res.Count = n
			}
			break
		}
	}

	return res
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
