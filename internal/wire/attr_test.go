package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeAttrsRoundTripPreservesOrderAndUnknown(t *testing.T) {
	in := []Attr{
		NewU32(1, 7),
		{Type: 9999, Value: []byte{0xAA, 0xBB, 0xCC}}, // unknown id, odd length forces padding
		NewStr(2, "board-0"),
	}
	raw, err := EncodeAttrs(in)
	if err != nil {
		t.Fatalf("encode attrs: %v", err)
	}
	out, err := DecodeAttrs(raw)
	if err != nil {
		t.Fatalf("decode attrs: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(out))
	}
	if out[0].Type != 1 {
		t.Fatalf("wire order not preserved: %+v", out)
	}
	if out[1].Type != 9999 || !bytes.Equal(out[1].Value, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("unknown attribute not preserved: %+v", out[1])
	}
	if s := Str(out[2].Value); s != "board-0" {
		t.Fatalf("string roundtrip mismatch: %q", s)
	}
}

func TestEncodeAttrSetsNestedFlag(t *testing.T) {
	body, err := EncodeAttrs([]Attr{NewU32(1, 0)})
	if err != nil {
		t.Fatalf("encode body: %v", err)
	}
	raw, err := EncodeAttr(NewNested(5, body))
	if err != nil {
		t.Fatalf("encode nested: %v", err)
	}
	out, err := DecodeAttrs(raw)
	if err != nil {
		t.Fatalf("decode nested: %v", err)
	}
	if len(out) != 1 || !out[0].Nested || out[0].Type != 5 {
		t.Fatalf("nested flag not round-tripped: %+v", out)
	}
}

func TestDecodeAttrsMalformedHeaderIsDeterministic(t *testing.T) {
	_, err := DecodeAttrs([]byte{1, 2, 3})
	if !errors.Is(err, ErrShortAttrHeader) {
		t.Fatalf("expected ErrShortAttrHeader, got %v", err)
	}
}

func TestDecodeAttrsMalformedLengthIsDeterministic(t *testing.T) {
	raw, err := EncodeAttr(NewStr(1, "ab"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Claim a length longer than what follows.
	binaryTruncated := raw[:len(raw)-2]
	_, err = DecodeAttrs(binaryTruncated)
	if !errors.Is(err, ErrShortAttrValue) {
		t.Fatalf("expected ErrShortAttrValue, got %v", err)
	}
}

func TestSignedAnyAcceptsBothWidths(t *testing.T) {
	buf32, err := EncodeAttr(NewS32(1, -5))
	if err != nil {
		t.Fatalf("encode s32: %v", err)
	}
	a32, err := DecodeAttrs(buf32)
	if err != nil {
		t.Fatalf("decode s32: %v", err)
	}
	v, ok := SignedAny(a32[0].Value)
	if !ok || v != -5 {
		t.Fatalf("expected -5, got %d ok=%v", v, ok)
	}

	buf64, err := EncodeAttr(NewS64(1, -9))
	if err != nil {
		t.Fatalf("encode s64: %v", err)
	}
	a64, err := DecodeAttrs(buf64)
	if err != nil {
		t.Fatalf("decode s64: %v", err)
	}
	v, ok = SignedAny(a64[0].Value)
	if !ok || v != -9 {
		t.Fatalf("expected -9, got %d ok=%v", v, ok)
	}

	if _, ok := SignedAny([]byte{1, 2, 3}); ok {
		t.Fatalf("expected absent for 3-byte width")
	}
}
