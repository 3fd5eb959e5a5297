package framing

import (
	"sort"

	"github.com/vkomarov/codecbench/bitio"
	"github.com/vkomarov/codecbench/codec/shannonfano"
)

// EncodeShannonFano packs a Shannon-Fano result into its on-disk frame:
// an 8-bit N-1 header, N (symbol, code-length, code) entries in ascending
// symbol order, a 32-bit payload bit-length, then the payload itself.
//
// A result with zero symbols cannot be framed: the N-1 header field has no
// representation for N=0. The codec itself tolerates empty input by
// round-tripping an empty payload in memory; only the on-disk frame refuses
// it.
func EncodeShannonFano(result shannonfano.Result) ([]byte, error) {
	n := len(result.Values)
	if n == 0 {
		return nil, ErrInvalidParameters
	}
	if n > 256 {
		return nil, ErrFieldOverflow
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return result.Values[order[i]] < result.Values[order[j]]
	})

	buf := bitio.NewBuffer()
	buf.AppendUint(uint64(n-1), 8)
	for _, i := range order {
		code := result.Codes[i]
		if !fitsInBits(uint64(len(code)), 8) {
			return nil, ErrFieldOverflow
		}
		buf.AppendUint(uint64(result.Values[i]), 8)
		buf.AppendUint(uint64(len(code)), 8)
		buf.AppendBits(code)
	}

	if !fitsInBits(uint64(len(result.Payload)), 32) {
		return nil, ErrFieldOverflow
	}
	buf.AppendUint(uint64(len(result.Payload)), 32)
	buf.AppendBits(result.Payload)

	return buf.Bytes(), nil
}

// DecodeShannonFano parses a frame written by EncodeShannonFano back into a
// shannonfano.Result, ready for shannonfano.BuildTree and DecodeBits.
func DecodeShannonFano(data []byte) (shannonfano.Result, error) {
	buf := bitio.FromBytes(data)
	pos := 0

	n64, err := buf.ReadUint(pos, 8)
	if err != nil {
		return shannonfano.Result{}, ErrTruncated
	}
	n := int(n64) + 1
	pos += 8

	values := make([]byte, n)
	codes := make([][]byte, n)
	for i := 0; i < n; i++ {
		sym, err := buf.ReadUint(pos, 8)
		if err != nil {
			return shannonfano.Result{}, ErrTruncated
		}
		pos += 8
		length, err := buf.ReadUint(pos, 8)
		if err != nil {
			return shannonfano.Result{}, ErrTruncated
		}
		pos += 8
		code, err := buf.ReadSlice(pos, int(length))
		if err != nil {
			return shannonfano.Result{}, ErrTruncated
		}
		pos += int(length)
		values[i] = byte(sym)
		codes[i] = code
	}

	payloadLen, err := buf.ReadUint(pos, 32)
	if err != nil {
		return shannonfano.Result{}, ErrTruncated
	}
	pos += 32
	payload, err := buf.ReadSlice(pos, int(payloadLen))
	if err != nil {
		return shannonfano.Result{}, ErrTruncated
	}

	return shannonfano.Result{Values: values, Codes: codes, Payload: payload}, nil
}
