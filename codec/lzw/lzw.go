// Package lzw implements LZW dictionary compression over an arena-based
// trie: the encoder grows the dictionary as it scans the input, emitting one
// code per step; the decoder regrows an equivalent dictionary from the code
// sequence alone, using the canonical self-referential next-prefix rule for
// the one case where a code names a phrase not yet installed.
package lzw

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

// ErrUnknownCode is returned by Decode when a received code is neither a
// known dictionary entry nor the pending entry's own index.
var ErrUnknownCode error = Error("code is neither known nor pending")

// Codec runs LZW encode/decode. It holds no configuration: every call
// builds a fresh dictionary from scratch.
type Codec struct{}

// New returns a ready Codec.
func New() *Codec { return &Codec{} }

// Result is the product of Encode: the initial one-symbol dictionary
// (Values, sorted ascending, implicitly indexed 1..len(Values)) plus the
// ordered code sequence that reconstructs the input.
type Result struct {
	Values []byte
	Codes  []int
}

// Encode scans data once, growing a dictionary trie as it goes, and returns
// the initial dictionary plus the emitted code sequence.
func (c *Codec) Encode(data []byte) Result {
	if len(data) == 0 {
		return Result{}
	}
	values := distinctSorted(data)
	t := newTrie()
	t.insertInitial(values)
	numberOfWords := len(values)

	var codes []int
	p := 0
	for p < len(data) {
		index, depth := t.findAndInsert(data, p, &numberOfWords)
		codes = append(codes, index)
		p += depth
	}
	return Result{Values: values, Codes: codes}
}

// pendingEntry is the decoder's deferred phrase: the previous step's output
// together with the index it will be installed under once the next code
// determines its final byte. An index of -1 marks the unset initial state.
type pendingEntry struct {
	prefix []byte
	index  int
}

// Decode rebuilds the dictionary from result.Values and replays
// result.Codes against it, reconstructing the original byte sequence.
func (c *Codec) Decode(result Result) ([]byte, error) {
	dict := make(map[int][]byte, len(result.Values)+len(result.Codes))
	for i, v := range result.Values {
		dict[i+1] = []byte{v}
	}
	nextFree := len(result.Values) + 1
	pending := pendingEntry{index: -1}

	var out []byte
	for _, index := range result.Codes {
		phrase, ok := dict[index]
		if ok {
			if pending.index != -1 {
				dict[pending.index] = appendByte(pending.prefix, phrase[0])
			}
		} else {
			if index != pending.index {
				return nil, ErrUnknownCode
			}
			dict[pending.index] = appendByte(pending.prefix, pending.prefix[0])
			phrase = dict[index]
		}
		out = append(out, phrase...)
		pending = pendingEntry{prefix: phrase, index: nextFree}
		nextFree++
	}
	return out, nil
}

func appendByte(prefix []byte, b byte) []byte {
	out := make([]byte, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = b
	return out
}

func distinctSorted(data []byte) []byte {
	var seen [256]bool
	for _, b := range data {
		seen[b] = true
	}
	values := make([]byte, 0, 256)
	for v := 0; v < 256; v++ {
		if seen[v] {
			values = append(values, byte(v))
		}
	}
	return values
}
