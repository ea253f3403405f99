// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a [StructuredConfig] from environ, a list of "KEY=value"
// pairs in the form returned by os.Environ. Variables are matched through the
// `env` and `envPrefix` tags of [StructuredConfig]; unrelated entries are
// ignored.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}

	return cfg, nil
}
