// Package bench is a codec-agnostic measurement harness: it drives a named
// codec's encode/decode/frame round trip over repeated trials and reports
// averaged timings and compressed size, the way the original harness's
// makeFullTest/makeTimeTest averaged over ten repetitions per cell.
package bench

import (
	"fmt"

	"github.com/vkomarov/codecbench/codec/lz77"
	"github.com/vkomarov/codecbench/codec/lzw"
	"github.com/vkomarov/codecbench/codec/shannonfano"
	"github.com/vkomarov/codecbench/framing"
	"github.com/vkomarov/codecbench/internal/stopwatch"
)

// DefaultTrials matches the original harness's default repetition count.
const DefaultTrials = 10

// Cell is one averaged (file, codec, params) measurement.
type Cell struct {
	Codec           string
	Params          string
	CompressedBytes int
	EncodeSeconds   float64
	DecodeSeconds   float64
}

func averageCell(codecName, params string, trials int, encode func() ([]byte, error), decode func([]byte) error) (Cell, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	var totalEncode, totalDecode float64
	var totalSize int
	for i := 0; i < trials; i++ {
		var frame []byte
		var encErr error
		totalEncode += stopwatch.Time(func() {
			frame, encErr = encode()
		})
		if encErr != nil {
			return Cell{}, encErr
		}
		totalSize += len(frame)

		var decErr error
		totalDecode += stopwatch.Time(func() {
			decErr = decode(frame)
		})
		if decErr != nil {
			return Cell{}, decErr
		}
	}
	return Cell{
		Codec:           codecName,
		Params:          params,
		CompressedBytes: totalSize / trials,
		EncodeSeconds:   totalEncode / float64(trials),
		DecodeSeconds:   totalDecode / float64(trials),
	}, nil
}

// MeasureShannonFano frames the Shannon-Fano encoding of data, round-tripped
// through decode, averaged over trials.
func MeasureShannonFano(data []byte, trials int) (Cell, error) {
	return averageCell("sf", "", trials,
		func() ([]byte, error) {
			c := shannonfano.New(data)
			return framing.EncodeShannonFano(c.Encode(data))
		},
		func(frame []byte) error {
			result, err := framing.DecodeShannonFano(frame)
			if err != nil {
				return err
			}
			tree := shannonfano.BuildTree(result.Values, result.Codes)
			_, err = shannonfano.DecodeBits(tree, result.Payload)
			return err
		},
	)
}

// MeasureLZW frames the LZW encoding of data, round-tripped through decode,
// averaged over trials.
func MeasureLZW(data []byte, trials int) (Cell, error) {
	codec := lzw.New()
	return averageCell("lzw", "", trials,
		func() ([]byte, error) {
			return framing.EncodeLZW(codec.Encode(data))
		},
		func(frame []byte) error {
			result, err := framing.DecodeLZW(frame)
			if err != nil {
				return err
			}
			_, err = codec.Decode(result)
			return err
		},
	)
}

// MeasureLZ77 frames the LZ77 encoding of data at the given (dictSize,
// windowSize) parameter point, round-tripped through decode, averaged over
// trials.
func MeasureLZ77(data []byte, dictSize, windowSize, trials int) (Cell, error) {
	codec, err := lz77.New(dictSize, windowSize)
	if err != nil {
		return Cell{}, err
	}
	bufferSize := windowSize - dictSize
	params := fmt.Sprintf("D=%d,W=%d", dictSize, windowSize)
	return averageCell("lz77", params, trials,
		func() ([]byte, error) {
			return framing.EncodeLZ77(codec.Encode(data), dictSize, bufferSize)
		},
		func(frame []byte) error {
			triples, err := framing.DecodeLZ77(frame, dictSize, bufferSize)
			if err != nil {
				return err
			}
			_, err = codec.Decode(triples)
			return err
		},
	)
}
