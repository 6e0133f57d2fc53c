package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// attrHeaderLen is the size of a raw nlattr header: nla_len(2) + nla_type(2).
const attrHeaderLen = 4

// nlaFNested marks the high bit of nla_type for a nested attribute, per
// the kernel's netlink attribute format.
const nlaFNested uint16 = 0x8000

// nlaTypeMask strips the nested/byteorder flag bits from nla_type.
const nlaTypeMask uint16 = 0x3fff

var (
	ErrShortAttrHeader = errors.New("wire: short attribute header")
	ErrShortAttrValue  = errors.New("wire: short attribute value")
	ErrAttrTooLarge    = errors.New("wire: attribute value too large")
)

// Attr is one decoded netlink attribute: a 4-byte header (length, type)
// followed by a value padded to a 4-byte boundary on the wire. Nested is
// true when NLA_F_NESTED was set on the wire type.
type Attr struct {
	Type   uint16
	Nested bool
	Value  []byte
}

// align rounds n up to the next multiple of 4, the netlink attribute
// alignment (NLA_ALIGNTO).
func align(n int) int {
	return (n + 3) &^ 3
}

// EncodeAttr serializes one attribute, including its padding.
func EncodeAttr(a Attr) ([]byte, error) {
	if len(a.Value) > int(^uint16(0))-attrHeaderLen {
		return nil, ErrAttrTooLarge
	}
	total := attrHeaderLen + len(a.Value)
	padded := align(total)
	buf := make([]byte, padded)

	nlaType := a.Type & nlaTypeMask
	if a.Nested {
		nlaType |= nlaFNested
	}
	binary.NativeEndian.PutUint16(buf[0:2], uint16(total))
	binary.NativeEndian.PutUint16(buf[2:4], nlaType)
	copy(buf[attrHeaderLen:], a.Value)
	return buf, nil
}

// EncodeAttrs serializes a sequence of attributes back to back.
func EncodeAttrs(attrs []Attr) ([]byte, error) {
	out := make([]byte, 0, len(attrs)*8)
	for _, a := range attrs {
		b, err := EncodeAttr(a)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeAttrs walks a flat attribute-list payload (one netlink message's
// worth, or one nested attribute's body) and returns every top-level
// attribute it finds, in wire order.
func DecodeAttrs(payload []byte) ([]Attr, error) {
	attrs := make([]Attr, 0, 8)
	i := 0
	for i < len(payload) {
		if len(payload)-i < attrHeaderLen {
			return nil, ErrShortAttrHeader
		}
		total := int(binary.NativeEndian.Uint16(payload[i : i+2]))
		rawType := binary.NativeEndian.Uint16(payload[i+2 : i+4])
		if total < attrHeaderLen {
			return nil, ErrShortAttrHeader
		}
		valueLen := total - attrHeaderLen
		if len(payload)-i-attrHeaderLen < valueLen {
			return nil, ErrShortAttrValue
		}
		value := make([]byte, valueLen)
		copy(value, payload[i+attrHeaderLen:i+total])
		attrs = append(attrs, Attr{
			Type:   rawType & nlaTypeMask,
			Nested: rawType&nlaFNested != 0,
			Value:  value,
		})
		i += align(total)
	}
	return attrs, nil
}

// GetAttr returns the first attribute matching id, if any.
func GetAttr(attrs []Attr, id uint16) (Attr, bool) {
	for _, a := range attrs {
		if a.Type == id {
			return a, true
		}
	}
	return Attr{}, false
}

// FilterAttrs returns every attribute matching id, in wire order.
func FilterAttrs(attrs []Attr, id uint16) []Attr {
	out := make([]Attr, 0, 2)
	for _, a := range attrs {
		if a.Type == id {
			out = append(out, a)
		}
	}
	return out
}

func U8(v []byte) (uint8, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("wire: invalid u8 length: %d", len(v))
	}
	return v[0], nil
}

func U32(v []byte) (uint32, error) {
	if len(v) != 4 {
		return 0, fmt.Errorf("wire: invalid u32 length: %d", len(v))
	}
	return binary.NativeEndian.Uint32(v), nil
}

func U64(v []byte) (uint64, error) {
	if len(v) != 8 {
		return 0, fmt.Errorf("wire: invalid u64 length: %d", len(v))
	}
	return binary.NativeEndian.Uint64(v), nil
}

// S32 interprets v as a signed 32-bit integer.
func S32(v []byte) (int32, error) {
	u, err := U32(v)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// S64 interprets v as a signed 64-bit integer.
func S64(v []byte) (int64, error) {
	u, err := U64(v)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// SignedAny decodes a wire value as s32 or s64 depending on its length,
// per spec: a signed field arrives as 4 or 8 bytes, and any other
// width makes the field absent rather than erroring the whole message.
func SignedAny(v []byte) (int64, bool) {
	switch len(v) {
	case 4:
		n, _ := S32(v)
		return int64(n), true
	case 8:
		n, _ := S64(v)
		return n, true
	default:
		return 0, false
	}
}

func Str(v []byte) string {
	// Wire strings may carry a trailing NUL; trim it for the domain value.
	if n := len(v); n > 0 && v[n-1] == 0 {
		return string(v[:n-1])
	}
	return string(v)
}

func NewStr(id uint16, v string) Attr {
	b := make([]byte, len(v)+1)
	copy(b, v)
	return Attr{Type: id, Value: b}
}

func NewU8(id uint16, v uint8) Attr {
	return Attr{Type: id, Value: []byte{v}}
}

func NewU32(id uint16, v uint32) Attr {
	buf := make([]byte, 4)
	binary.NativeEndian.PutUint32(buf, v)
	return Attr{Type: id, Value: buf}
}

func NewU64(id uint16, v uint64) Attr {
	buf := make([]byte, 8)
	binary.NativeEndian.PutUint64(buf, v)
	return Attr{Type: id, Value: buf}
}

func NewS32(id uint16, v int32) Attr {
	return NewU32(id, uint32(v))
}

func NewS64(id uint16, v int64) Attr {
	return NewU64(id, uint64(v))
}

func NewNested(id uint16, body []byte) Attr {
	return Attr{Type: id, Nested: true, Value: body}
}
