package wire

import "errors"

// ErrBufferOverflow is returned when the whole request would exceed the
// size this encoder is willing to build. A single oversized attribute
// yields ErrAttrTooLarge instead.
var ErrBufferOverflow = errors.New("wire: buffer overflow")

// maxRequestBytes bounds the total size of one built request; DPLL
// requests are small fixed-shape attribute sets, so this is generous.
const maxRequestBytes = 1 << 20

// NestHandle identifies one open nested attribute, returned by
// OpenNested and required by CloseNested, so a nest can never be closed
// twice or out of order.
type NestHandle int

// Builder accumulates typed attributes for one outbound request,
// preserving call order, and supports nested attribute blocks via an
// explicit open/close handle pair.
type Builder struct {
	frames []nestFrame
	err    error
}

type nestFrame struct {
	id    uint16
	attrs []Attr
}

// NewBuilder returns an empty Builder ready to accept top-level attributes.
func NewBuilder() *Builder {
	return &Builder{frames: []nestFrame{{}}}
}

func (b *Builder) append(a Attr) {
	if b.err != nil {
		return
	}
	top := len(b.frames) - 1
	b.frames[top].attrs = append(b.frames[top].attrs, a)
}

func (b *Builder) PutU8(id uint16, v uint8)   { b.append(NewU8(id, v)) }
func (b *Builder) PutU32(id uint16, v uint32) { b.append(NewU32(id, v)) }
func (b *Builder) PutU64(id uint16, v uint64) { b.append(NewU64(id, v)) }
func (b *Builder) PutS32(id uint16, v int32)  { b.append(NewS32(id, v)) }
func (b *Builder) PutS64(id uint16, v int64)  { b.append(NewS64(id, v)) }
func (b *Builder) PutStr(id uint16, v string) { b.append(NewStr(id, v)) }

// OpenNested begins a nested attribute block under id and returns a
// handle that must be passed to the matching CloseNested.
func (b *Builder) OpenNested(id uint16) NestHandle {
	b.frames = append(b.frames, nestFrame{id: id})
	return NestHandle(len(b.frames) - 1)
}

// CloseNested closes the nested block opened with handle, encoding its
// accumulated attributes and appending the result to the parent level.
// Closing anything but the most recently opened block is a programmer
// error; it is recorded and returned by Finish.
func (b *Builder) CloseNested(handle NestHandle) {
	if b.err != nil {
		return
	}
	idx := int(handle)
	if idx != len(b.frames)-1 || idx == 0 {
		b.err = errors.New("wire: nested close does not match most recent open")
		return
	}
	frame := b.frames[idx]
	body, err := EncodeAttrs(frame.attrs)
	if err != nil {
		b.err = err
		return
	}
	b.frames = b.frames[:idx]
	b.append(NewNested(frame.id, body))
}

// Finish encodes every top-level attribute in call order and returns the
// resulting payload, or an error if the builder is unbalanced or any
// attribute could not be encoded.
func (b *Builder) Finish() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.frames) != 1 {
		return nil, errors.New("wire: unbalanced nested attribute blocks")
	}
	out, err := EncodeAttrs(b.frames[0].attrs)
	if err != nil {
		return nil, err
	}
	if len(out) > maxRequestBytes {
		return nil, ErrBufferOverflow
	}
	return out, nil
}
