// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyctl implements the keyctl command line tool: offline inspection
// of envelopes, master key derivation and KDF parameter checks.
package keyctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-keycore/models"
)

// NewRootCommand builds the keyctl command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "keyctl",
		Short:         "Offline tools for the key-core crypto primitives",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", info.BuildVersion(), info.BuildDate(), info.BuildCommit()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEnvelopeCommand())
	root.AddCommand(newDeriveCommand())
	root.AddCommand(newKdfCommand())

	return root
}
