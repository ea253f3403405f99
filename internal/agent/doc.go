// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent assembles the key-core agent process.
//
// It wires the state storages, the vault server adapter, the services, the
// migrator, the background workers and the local API server into a single
// process lifecycle.
package agent
