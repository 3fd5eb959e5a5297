package framing

import (
	"github.com/vkomarov/codecbench/bitio"
	"github.com/vkomarov/codecbench/codec/lzw"
)

// EncodeLZW packs an LZW result into its on-disk frame: an 8-bit N-1
// header, N one-byte symbols in ascending order (index assignment is
// implicit, 1-based), a 32-bit code count, then that many 32-bit codes.
//
// As with Shannon-Fano, a zero-symbol result cannot be framed: N-1 has no
// representation for N=0.
func EncodeLZW(result lzw.Result) ([]byte, error) {
	n := len(result.Values)
	if n == 0 {
		return nil, ErrInvalidParameters
	}
	if n > 256 {
		return nil, ErrFieldOverflow
	}
	if !fitsInBits(uint64(len(result.Codes)), 32) {
		return nil, ErrFieldOverflow
	}

	buf := bitio.NewBuffer()
	buf.AppendUint(uint64(n-1), 8)
	for _, v := range result.Values {
		buf.AppendUint(uint64(v), 8)
	}
	buf.AppendUint(uint64(len(result.Codes)), 32)
	for _, code := range result.Codes {
		if !fitsInBits(uint64(code), 32) {
			return nil, ErrFieldOverflow
		}
		buf.AppendUint(uint64(code), 32)
	}
	return buf.Bytes(), nil
}

// DecodeLZW parses a frame written by EncodeLZW back into an lzw.Result.
func DecodeLZW(data []byte) (lzw.Result, error) {
	buf := bitio.FromBytes(data)
	pos := 0

	n64, err := buf.ReadUint(pos, 8)
	if err != nil {
		return lzw.Result{}, ErrTruncated
	}
	n := int(n64) + 1
	pos += 8

	values := make([]byte, n)
	for i := 0; i < n; i++ {
		v, err := buf.ReadUint(pos, 8)
		if err != nil {
			return lzw.Result{}, ErrTruncated
		}
		values[i] = byte(v)
		pos += 8
	}

	m64, err := buf.ReadUint(pos, 32)
	if err != nil {
		return lzw.Result{}, ErrTruncated
	}
	pos += 32
	m := int(m64)

	codes := make([]int, m)
	for i := 0; i < m; i++ {
		c, err := buf.ReadUint(pos, 32)
		if err != nil {
			return lzw.Result{}, ErrTruncated
		}
		codes[i] = int(c)
		pos += 32
	}

	return lzw.Result{Values: values, Codes: codes}, nil
}
