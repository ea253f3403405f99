// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoLocalAPIHandler is returned by [NewServer] when the local API handler
// was not built.
var ErrNoLocalAPIHandler = errors.New("local API handler is required")
