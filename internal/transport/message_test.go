package transport

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBuildAndParseMessageRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	msg := buildMessage(0x20, nlmFRequest, 7, 2, payload)

	msgs, err := parseMessages(msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	got := msgs[0]
	if got.Header.Type != 0x20 || got.Header.Seq != 7 {
		t.Fatalf("unexpected header: %+v", got.Header)
	}
	if got.Genl.Cmd != 2 {
		t.Fatalf("unexpected genl cmd: %d", got.Genl.Cmd)
	}
	if !bytes.Equal(got.Payload, payload) {
		t.Fatalf("payload mismatch: %v", got.Payload)
	}
}

func TestParseMessagesSplitsConcatenatedMessages(t *testing.T) {
	a := buildMessage(0x20, 0, 1, 1, []byte{0xAA})
	b := buildMessage(0x20, 0, 2, 1, []byte{0xBB, 0xCC})
	buf := append(append([]byte{}, a...), b...)

	msgs, err := parseMessages(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Header.Seq != 1 || msgs[1].Header.Seq != 2 {
		t.Fatalf("messages out of order: %+v", msgs)
	}
}

func TestParseMessagesRejectsTruncatedHeader(t *testing.T) {
	if _, err := parseMessages([]byte{0, 1, 2}); err == nil {
		t.Fatalf("expected error for truncated header")
	}
}

func TestParseMessagesRejectsInvalidLength(t *testing.T) {
	msg := buildMessage(0x20, 0, 1, 1, nil)
	// Corrupt nlmsg_len to claim more than the buffer actually holds.
	msg[0] = 0xff
	msg[1] = 0xff
	if _, err := parseMessages(msg); err == nil {
		t.Fatalf("expected error for invalid length")
	}
}

func TestParseMessagesDecodesControlMessage(t *testing.T) {
	msg := buildControlMessage(nlmsgError, 3, -22)

	msgs, err := parseMessages(msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Control == nil {
		t.Fatalf("expected one control message: %+v", msgs)
	}
	if err := controlError(msgs[0]); err == nil {
		t.Fatalf("expected kernel error for nonzero errno")
	}
}

func TestControlErrorIsNilForSuccessfulDone(t *testing.T) {
	msg := buildControlMessage(nlmsgDone, 3, 0)
	msgs, err := parseMessages(msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := controlError(msgs[0]); err != nil {
		t.Fatalf("expected nil error for errno 0, got %v", err)
	}
}

// buildControlMessage constructs a raw NLMSG_ERROR/NLMSG_DONE message
// whose body is the 4-byte errno field, bypassing buildMessage (which
// always writes a genlmsghdr).
func buildControlMessage(msgType uint16, seq uint32, errno int32) []byte {
	buf := make([]byte, nlmsgHdrLen+4)
	binary.NativeEndian.PutUint32(buf[0:4], uint32(len(buf)))
	binary.NativeEndian.PutUint16(buf[4:6], msgType)
	binary.NativeEndian.PutUint32(buf[8:12], seq)
	binary.NativeEndian.PutUint32(buf[nlmsgHdrLen:], uint32(errno))
	return buf
}
