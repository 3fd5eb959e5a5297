package framing

import (
	"github.com/vkomarov/codecbench/bitio"
	"github.com/vkomarov/codecbench/codec/lz77"
)

// fieldWidths returns the offset and length field widths for a given
// dictionary size D and buffer size B, per spec.md's frame layout: the
// length field gets one extra bit when B is a power of two, since a match
// can legitimately span the entire buffer (length = B), which is one past
// the largest value ceil(log2(B)) bits can hold when B is a power of two.
func fieldWidths(dictSize, bufferSize int) (offsetWidth, lengthWidth int) {
	offsetWidth = ceilLog2(dictSize)
	lengthWidth = ceilLog2(bufferSize)
	if isPowerOfTwo(bufferSize) {
		lengthWidth++
	}
	return offsetWidth, lengthWidth
}

// EncodeLZ77 packs a triple sequence into repeating (offset, length,
// character) fields. Offsets are stored biased by -1 (stored = offset-1)
// except for literal triples (offset=0, length=0), which store 0.
func EncodeLZ77(triples []lz77.Triple, dictSize, bufferSize int) ([]byte, error) {
	offsetWidth, lengthWidth := fieldWidths(dictSize, bufferSize)
	buf := bitio.NewBuffer()
	for _, t := range triples {
		stored := 0
		if t.Offset > 0 {
			stored = t.Offset - 1
		}
		if !fitsInBits(uint64(stored), offsetWidth) {
			return nil, ErrFieldOverflow
		}
		if !fitsInBits(uint64(t.Length), lengthWidth) {
			return nil, ErrFieldOverflow
		}
		buf.AppendUint(uint64(stored), offsetWidth)
		buf.AppendUint(uint64(t.Length), lengthWidth)
		buf.AppendUint(uint64(t.Character), 8)
	}
	return buf.Bytes(), nil
}

// DecodeLZ77 parses repeating triples until fewer than one full triple's
// worth of bits remain; any such trailing bits are pad from byte-alignment
// and are ignored.
func DecodeLZ77(data []byte, dictSize, bufferSize int) ([]lz77.Triple, error) {
	offsetWidth, lengthWidth := fieldWidths(dictSize, bufferSize)
	step := offsetWidth + lengthWidth + 8

	buf := bitio.FromBytes(data)
	var triples []lz77.Triple
	for pos := 0; pos+step <= buf.Len(); pos += step {
		stored, err := buf.ReadUint(pos, offsetWidth)
		if err != nil {
			return nil, ErrTruncated
		}
		length, err := buf.ReadUint(pos+offsetWidth, lengthWidth)
		if err != nil {
			return nil, ErrTruncated
		}
		character, err := buf.ReadUint(pos+offsetWidth+lengthWidth, 8)
		if err != nil {
			return nil, ErrTruncated
		}

		offset := int(stored) + 1
		if stored == 0 && length == 0 {
			offset = 0
		}
		triples = append(triples, lz77.Triple{
			Offset:    offset,
			Length:    int(length),
			Character: byte(character),
		})
	}
	return triples, nil
}
