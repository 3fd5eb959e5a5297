// Command codecbench walks a corpus of files and benchmarks the
// Shannon-Fano, LZ77, and LZW codecs against each, writing one CSV row per
// (file, codec, parameter) cell.
//
// Example usage:
//
//	$ codecbench -corpus ./testdata -out results.csv \
//		-codecs sf,lzw,lz77 \
//		-dict 4096,8192 -window 5120,10240 \
//		-trials 10
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"

	golibstrconv "github.com/dsnet/golib/strconv"

	"github.com/vkomarov/codecbench/internal/bench"
	"github.com/vkomarov/codecbench/internal/corpus"
	"github.com/vkomarov/codecbench/internal/entropy"
	"github.com/vkomarov/codecbench/internal/report"
)

var sep = regexp.MustCompile("[,:]")

func main() {
	corpusDir := flag.String("corpus", "", "directory of input files to benchmark")
	outPath := flag.String("out", "results.csv", "path to the CSV results file")
	codecsFlag := flag.String("codecs", "sf,lz77,lzw", "comma-separated subset of sf, lz77, lzw")
	dictFlag := flag.String("dict", "4096,8192,16384", "comma-separated LZ77 dictionary sizes, paired by position with -window")
	windowFlag := flag.String("window", "5120,10240,20480", "comma-separated LZ77 window sizes, paired by position with -dict")
	trials := flag.Int("trials", bench.DefaultTrials, "number of repetitions averaged per (file, codec, parameter) cell")
	freqOut := flag.String("freq", "", "if set, write a byte-frequency table to this CSV path instead of the benchmark matrix")
	flag.Parse()

	if *corpusDir == "" {
		log.Fatal("[codecbench] -corpus is required")
	}

	files, err := corpus.List(*corpusDir)
	if err != nil {
		log.Fatalf("[codecbench] reading corpus: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("[codecbench] no files found under %s", *corpusDir)
	}

	if *freqOut != "" {
		if err := writeFrequencyTable(files, *freqOut); err != nil {
			log.Fatalf("[codecbench] frequency mode: %v", err)
		}
		return
	}

	codecs := sep.Split(*codecsFlag, -1)
	dictSizes, err := parseSizeList(*dictFlag)
	if err != nil {
		log.Fatalf("[codecbench] -dict: %v", err)
	}
	windowSizes, err := parseSizeList(*windowFlag)
	if err != nil {
		log.Fatalf("[codecbench] -window: %v", err)
	}
	if len(dictSizes) != len(windowSizes) {
		log.Fatalf("[codecbench] -dict and -window must list the same number of values")
	}

	writer, err := report.Create(*outPath)
	if err != nil {
		log.Fatalf("[codecbench] creating %s: %v", *outPath, err)
	}
	defer writer.Close()

	for _, f := range files {
		log.Printf("[codecbench] %s: %d bytes", f.Name, len(f.Data))
		h := entropy.BitsPerByte(f.Data)

		for _, codecName := range codecs {
			switch codecName {
			case "sf":
				cell, err := bench.MeasureShannonFano(f.Data, *trials)
				if err != nil {
					log.Printf("[codecbench] %s: sf: %v", f.Name, err)
					continue
				}
				writeCell(writer, f.Name, len(f.Data), h, cell)
			case "lzw":
				cell, err := bench.MeasureLZW(f.Data, *trials)
				if err != nil {
					log.Printf("[codecbench] %s: lzw: %v", f.Name, err)
					continue
				}
				writeCell(writer, f.Name, len(f.Data), h, cell)
			case "lz77":
				for i := range dictSizes {
					cell, err := bench.MeasureLZ77(f.Data, dictSizes[i], windowSizes[i], *trials)
					if err != nil {
						log.Printf("[codecbench] %s: lz77(%d,%d): %v", f.Name, dictSizes[i], windowSizes[i], err)
						continue
					}
					writeCell(writer, f.Name, len(f.Data), h, cell)
				}
			default:
				log.Printf("[codecbench] unknown codec %q, skipping", codecName)
			}
		}
	}
}

func writeCell(w *report.Writer, file string, size int, h float64, cell bench.Cell) {
	ratio := 0.0
	if size > 0 {
		ratio = float64(cell.CompressedBytes) / float64(size)
	}
	err := w.Write(report.Row{
		File:               file,
		SizeBytes:          size,
		EntropyBitsPerByte: h,
		Codec:              cell.Codec,
		Params:             cell.Params,
		CompressedBytes:    cell.CompressedBytes,
		Ratio:              ratio,
		EncodeSeconds:      cell.EncodeSeconds,
		DecodeSeconds:      cell.DecodeSeconds,
	})
	if err != nil {
		log.Printf("[codecbench] writing row for %s/%s: %v", file, cell.Codec, err)
	}
}

// parseSizeList splits a comma/colon-separated list of human-readable sizes
// ("4096", "4k", "1e4") into integers.
func parseSizeList(s string) ([]int, error) {
	var out []int
	for _, part := range sep.Split(s, -1) {
		if part == "" {
			continue
		}
		v, err := golibstrconv.ParsePrefix(part, golibstrconv.AutoParse)
		if err != nil {
			return nil, fmt.Errorf("%q: %v", part, err)
		}
		out = append(out, int(v))
	}
	return out, nil
}

func writeFrequencyTable(files []corpus.File, path string) error {
	names := make([]string, len(files))
	freqs := make([][256]float64, len(files))
	for i, f := range files {
		names[i] = f.Name
		var counts [256]int
		for _, b := range f.Data {
			counts[b]++
		}
		size := float64(len(f.Data))
		for b := 0; b < 256; b++ {
			if size > 0 {
				freqs[i][b] = float64(counts[b]) / size
			}
		}
	}
	if err := report.FrequencyTable(path, names, freqs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "[codecbench] wrote frequency table for %d files to %s\n", len(files), path)
	return nil
}
