package bitio

import (
	"bytes"
	"reflect"
	"testing"
)

func TestAppendBitsToBytes(t *testing.T) {
	vectors := []struct {
		bits []byte
		want []byte
	}{
		{nil, nil},
		{[]byte{1}, []byte{0x80}},
		{[]byte{0, 0, 0, 0, 0, 0, 0, 1}, []byte{0x01}},
		{[]byte{1, 1, 1, 1, 1, 1, 1, 1}, []byte{0xff}},
		{[]byte{1, 0, 1}, []byte{0xa0}}, // padded with zero bits
		{[]byte{1, 1, 1, 1, 1, 1, 1, 1, 1}, []byte{0xff, 0x80}},
	}
	for _, v := range vectors {
		b := NewBuffer()
		b.AppendBits(v.bits)
		if got := b.Bytes(); !bytes.Equal(got, v.want) {
			t.Errorf("AppendBits(%v).Bytes() = %x, want %x", v.bits, got, v.want)
		}
	}
}

func TestFromBytesLength(t *testing.T) {
	b := FromBytes([]byte{0xde, 0xad})
	if got, want := b.Len(), 16; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	slice, err := b.ReadSlice(0, 16)
	if err != nil {
		t.Fatalf("ReadSlice: %v", err)
	}
	want := []byte{1, 1, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1}
	if !reflect.DeepEqual(slice, want) {
		t.Errorf("ReadSlice = %v, want %v", slice, want)
	}
}

func TestReadUint(t *testing.T) {
	b := FromBytes([]byte{0b10110010, 0b11110000})
	vectors := []struct {
		start, length int
		want          uint64
	}{
		{0, 8, 0xb2},
		{0, 4, 0xb},
		{4, 4, 0x2},
		{0, 16, 0xb2f0},
		{8, 8, 0xf0},
	}
	for _, v := range vectors {
		got, err := b.ReadUint(v.start, v.length)
		if err != nil {
			t.Fatalf("ReadUint(%d,%d): %v", v.start, v.length, err)
		}
		if got != v.want {
			t.Errorf("ReadUint(%d,%d) = %#x, want %#x", v.start, v.length, got, v.want)
		}
	}
}

func TestReadPastEndFails(t *testing.T) {
	b := FromBytes([]byte{0xff})
	if _, err := b.ReadUint(0, 9); err != ErrTruncated {
		t.Errorf("ReadUint past end = %v, want ErrTruncated", err)
	}
	if _, err := b.ReadSlice(4, 8); err != ErrTruncated {
		t.Errorf("ReadSlice past end = %v, want ErrTruncated", err)
	}
}

func TestEncodeUint(t *testing.T) {
	vectors := []struct {
		value uint64
		width int
		want  []byte
	}{
		{0, 4, []byte{0, 0, 0, 0}},
		{5, 4, []byte{0, 1, 0, 1}},
		{255, 8, []byte{1, 1, 1, 1, 1, 1, 1, 1}},
	}
	for _, v := range vectors {
		if got := EncodeUint(v.value, v.width); !reflect.DeepEqual(got, v.want) {
			t.Errorf("EncodeUint(%d,%d) = %v, want %v", v.value, v.width, got, v.want)
		}
	}
}

func TestAppendUintRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.AppendUint(0x1a, 8)
	b.AppendUint(0x3, 3)
	buf := FromBytes(b.Bytes())
	got, err := buf.ReadUint(0, 8)
	if err != nil || got != 0x1a {
		t.Fatalf("ReadUint(0,8) = %#x, %v", got, err)
	}
	got, err = buf.ReadUint(8, 3)
	if err != nil || got != 0x3 {
		t.Fatalf("ReadUint(8,3) = %#x, %v", got, err)
	}
}
