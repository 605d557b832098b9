// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cqlgate contains the shared definitions used across the CQL query
// gateway: the HTTP response contract and the service health document.
package cqlgate
