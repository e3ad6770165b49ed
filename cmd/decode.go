package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/pitwall/internal/core/decoder"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode one raw datagram file",
	Long: `Decode a file holding exactly one raw telemetry datagram (the UDP payload,
no link or IP headers) and print the packet.

Examples:
  pitwall decode -f lap.bin
  pitwall decode -f session.bin --format yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecode(decodeFile, decodeFormat, os.Stdout); err != nil {
			exitWithError("decode failed", err)
		}
	},
}

var (
	decodeFile   string
	decodeFormat string
)

func init() {
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "raw datagram file (required)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "json", "output format: json|yaml")
	decodeCmd.MarkFlagRequired("file")
}

// decodedDatagram is what decode prints: the packet kind alongside the packet.
type decodedDatagram struct {
	Kind   decoder.PacketKind `json:"kind" yaml:"kind"`
	Packet decoder.Packet     `json:"packet" yaml:"packet"`
}

func runDecode(path, format string, out io.Writer) error {
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q (must be json/yaml)", format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	pkt, err := decoder.Decode(data, len(data))
	if err != nil {
		return err
	}
	doc := decodedDatagram{Kind: pkt.Kind(), Packet: pkt}

	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
