// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cqlsh_test

import (
	"fmt"
	"testing"

	"github.com/cqlgate/cqlgate/gateway"
	"github.com/cqlgate/cqlgate/gateway/cqlsh"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		desc    string
		out     string
		columns []gateway.Column
		rows    []map[string]interface{}
		count   uint64
	}{
		{
			desc: "single row result",
			out: "\n" +
				" id | name\n" +
				"----+------\n" +
				"  1 | anne\n" +
				"\n" +
				"(1 rows)\n",
			columns: []gateway.Column{{Name: "id"}, {Name: "name"}},
			rows:    []map[string]interface{}{{"id": "1", "name": "anne"}},
			count:   1,
		},
		{
			desc: "multiple rows with nulls",
			out: "\n" +
				" id | name | email\n" +
				"----+------+-------\n" +
				"  1 | anne | anne@example.com\n" +
				"  2 | bob  | null\n" +
				"\n" +
				"(2 rows)\n",
			columns: []gateway.Column{{Name: "id"}, {Name: "name"}, {Name: "email"}},
			rows: []map[string]interface{}{
				{"id": "1", "name": "anne", "email": "anne@example.com"},
				{"id": "2", "name": "bob", "email": "null"},
			},
			count: 2,
		},
		{
			desc: "consistency banner before the table",
			out: "Consistency level set to LOCAL_QUORUM.\n" +
				"\n" +
				" key\n" +
				"-----\n" +
				" local\n" +
				"\n" +
				"(1 rows)\n",
			columns: []gateway.Column{{Name: "key"}},
			rows:    []map[string]interface{}{{"key": "local"}},
			count:   1,
		},
		{
			desc:    "statement without result set",
			out:     "",
			columns: nil,
			rows:    []map[string]interface{}{},
			count:   0,
		},
		{
			desc:    "empty result set",
			out:     "\n id | name\n----+------\n\n(0 rows)\n",
			columns: []gateway.Column{{Name: "id"}, {Name: "name"}},
			rows:    []map[string]interface{}{},
			count:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			res := cqlsh.Parse(tc.out)
			assert.Equal(t, tc.columns, res.Columns, fmt.Sprintf("%s: unexpected columns", tc.desc))
			assert.Equal(t, tc.rows, res.Rows, fmt.Sprintf("%s: unexpected rows", tc.desc))
			assert.Equal(t, tc.count, res.Count, fmt.Sprintf("%s: unexpected count", tc.desc))
		})
	}
}
