package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Write(Row{
		File: "a.txt", SizeBytes: 100, EntropyBitsPerByte: 4.5,
		Codec: "sf", Params: "", CompressedBytes: 60, Ratio: 0.6,
		EncodeSeconds: 0.001, DecodeSeconds: 0.0005,
	}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (header + row)", len(lines))
	}
	if !strings.Contains(lines[0], "file") || !strings.Contains(lines[0], "encode_seconds") {
		t.Fatalf("header = %q, missing expected columns", lines[0])
	}
	if !strings.Contains(lines[1], "a.txt") || !strings.Contains(lines[1], "sf") {
		t.Fatalf("row = %q, missing expected fields", lines[1])
	}
}

func TestFrequencyTableShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.csv")
	var freqs [][256]float64
	freqs = append(freqs, [256]float64{})
	freqs[0][0] = 1.0
	if err := FrequencyTable(path, []string{"f.bin"}, freqs); err != nil {
		t.Fatalf("FrequencyTable: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 257 {
		t.Fatalf("len(lines) = %d, want 257 (header + 256 byte rows)", len(lines))
	}
}
