// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cassandra contains the Cassandra connection setup shared by the
// gateway executors: environment driven defaults and session creation.
package cassandra
