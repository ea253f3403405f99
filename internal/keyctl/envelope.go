package keyctl

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-keycore/internal/crypto"
)

// envelopeInfo describes a parsed envelope without its content.
type envelopeInfo struct {
	Type     int    `json:"type"`
	TypeName string `json:"typeName"`
	IVLen    int    `json:"ivLength"`
	DataLen  int    `json:"dataLength"`
	MACLen   int    `json:"macLength"`
}

func newEnvelopeCommand() *cobra.Command {
	envelope := &cobra.Command{
		Use:   "envelope",
		Short: "Work with encrypted envelopes",
	}

	var jsonOutput bool
	inspect := &cobra.Command{
		Use:   "inspect <encstring>",
		Short: "Print the type and piece lengths of an envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := crypto.ParseEncString(args[0])
			if err != nil {
				return fmt.Errorf("parse envelope: %w", err)
			}

			info := envelopeInfo{
				Type:     int(enc.EncryptionType()),
				TypeName: enc.EncryptionType().String(),
				IVLen:    len(enc.IV()),
				DataLen:  len(enc.Data()),
				MACLen:   len(enc.MAC()),
			}

			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "type: %d (%s)\niv: %d bytes\ndata: %d bytes\nmac: %d bytes\n",
				info.Type, info.TypeName, info.IVLen, info.DataLen, info.MACLen)
			return nil
		},
	}
	inspect.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	envelope.AddCommand(inspect)
	return envelope
}
