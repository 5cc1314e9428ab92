// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows and the learning services into a single
// process lifecycle: log in, work with topics, log out, repeat.
package client
