// Package report writes benchmark rows to CSV, the same incremental,
// append-as-you-go shape as the original harness's CSVWriter (open once,
// append a header row, then one row per measurement) rather than buffering
// the whole table in memory first.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row is one benchmark measurement: one (file, codec, parameter) cell of
// the results matrix.
type Row struct {
	File               string
	SizeBytes          int
	EntropyBitsPerByte float64
	Codec              string
	Params             string
	CompressedBytes    int
	Ratio              float64
	EncodeSeconds      float64
	DecodeSeconds      float64
}

// Headings are the CSV column names, generalizing the original harness's
// wide per-file row (S1, H, SF_S2, SF_K, ...) to one row per (file, codec,
// params) cell, since the codec/parameter list is now dynamic.
var Headings = []string{
	"file", "size_bytes", "entropy_bits_per_byte", "codec", "params",
	"compressed_bytes", "ratio", "encode_seconds", "decode_seconds",
}

// Writer appends Rows to a CSV file, writing the header once on creation.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// Create opens path for writing (truncating any existing file) and writes
// the header row.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(Headings); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	return &Writer{f: f, w: w}, nil
}

// Write appends one row and flushes immediately, so a crash mid-run loses
// at most the in-flight row.
func (rw *Writer) Write(row Row) error {
	record := []string{
		row.File,
		fmt.Sprintf("%d", row.SizeBytes),
		fmt.Sprintf("%.4f", row.EntropyBitsPerByte),
		row.Codec,
		row.Params,
		fmt.Sprintf("%d", row.CompressedBytes),
		fmt.Sprintf("%.4f", row.Ratio),
		fmt.Sprintf("%.6f", row.EncodeSeconds),
		fmt.Sprintf("%.6f", row.DecodeSeconds),
	}
	if err := rw.w.Write(record); err != nil {
		return err
	}
	rw.w.Flush()
	return rw.w.Error()
}

// Close closes the underlying file.
func (rw *Writer) Close() error { return rw.f.Close() }

// FrequencyTable writes a 256-row x N-file byte-frequency table, one column
// per file, matching the original harness's measureFilesPrintResult mode.
func FrequencyTable(path string, fileNames []string, frequencies [][256]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(fileNames); err != nil {
		return err
	}
	for b := 0; b < 256; b++ {
		record := make([]string, len(fileNames))
		for i := range fileNames {
			record[i] = fmt.Sprintf("%.6f", frequencies[i][b])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
