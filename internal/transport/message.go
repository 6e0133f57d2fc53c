package transport

import (
	"encoding/binary"
	"fmt"
)

// nlmsghdr sizes and offsets (struct nlmsghdr in <linux/netlink.h>):
// nlmsg_len(4) nlmsg_type(2) nlmsg_flags(2) nlmsg_seq(4) nlmsg_pid(4).
const nlmsgHdrLen = 16

// genlmsghdr sizes (struct genlmsghdr in <linux/genetlink.h>):
// cmd(1) version(1) reserved(2).
const genlHdrLen = 4

// Netlink message types and flags this client needs. The generic
// family id itself (not a fixed constant) is resolved at runtime via
// CTRL_CMD_GETFAMILY.
const (
	nlmsgNoop  uint16 = 0x1
	nlmsgError uint16 = 0x2
	nlmsgDone  uint16 = 0x3

	nlmFRequest uint16 = 0x1
	nlmFAck     uint16 = 0x4
	nlmFDump    uint16 = 0x100 | 0x200 // NLM_F_ROOT|NLM_F_MATCH, conventionally written NLM_F_DUMP
)

// nlMsgHdr is the decoded form of nlmsghdr.
type nlMsgHdr struct {
	Len   uint32
	Type  uint16
	Flags uint16
	Seq   uint32
	Pid   uint32
}

// genlMsgHdr is the decoded form of genlmsghdr.
type genlMsgHdr struct {
	Cmd     uint8
	Version uint8
}

// buildMessage assembles one complete netlink datagram: nlmsghdr +
// genlmsghdr + attribute payload, padded at the end to a 4-byte
// boundary. nlmsg_len records the unpadded length, matching how the
// kernel packs successive messages in a buffer and how parseMessages
// advances between them with align4.
func buildMessage(msgType uint16, flags uint16, seq uint32, cmd uint8, payload []byte) []byte {
	total := nlmsgHdrLen + genlHdrLen + len(payload)
	buf := make([]byte, align4(total))

	binary.NativeEndian.PutUint32(buf[0:4], uint32(total))
	binary.NativeEndian.PutUint16(buf[4:6], msgType)
	binary.NativeEndian.PutUint16(buf[6:8], flags)
	binary.NativeEndian.PutUint32(buf[8:12], seq)
	binary.NativeEndian.PutUint32(buf[12:16], 0) // pid: let the kernel fill in ours

	buf[16] = cmd
	buf[17] = 1 // genl version
	binary.NativeEndian.PutUint16(buf[18:20], 0)

	copy(buf[20:], payload)
	return buf
}

// parseMessages splits buf, which may hold one or more concatenated
// netlink messages (the common case for a dump reply), into decoded
// headers and their payloads. The payload for a genl-family message is
// everything past genlmsghdr; for NLMSG_ERROR/NLMSG_DONE control
// messages it is the raw 4-byte errno field.
func parseMessages(buf []byte) ([]nlMessage, error) {
	var out []nlMessage
	for len(buf) > 0 {
		if len(buf) < nlmsgHdrLen {
			return nil, fmt.Errorf("truncated netlink header: %d bytes remaining", len(buf))
		}
		hdr := nlMsgHdr{
			Len:   binary.NativeEndian.Uint32(buf[0:4]),
			Type:  binary.NativeEndian.Uint16(buf[4:6]),
			Flags: binary.NativeEndian.Uint16(buf[6:8]),
			Seq:   binary.NativeEndian.Uint32(buf[8:12]),
			Pid:   binary.NativeEndian.Uint32(buf[12:16]),
		}
		if int(hdr.Len) < nlmsgHdrLen || int(hdr.Len) > len(buf) {
			return nil, fmt.Errorf("invalid netlink message length %d (buffer has %d)", hdr.Len, len(buf))
		}

		body := buf[nlmsgHdrLen:hdr.Len]
		msg := nlMessage{Header: hdr}

		switch hdr.Type {
		case nlmsgError, nlmsgDone:
			msg.Control = body
		default:
			if len(body) < genlHdrLen {
				return nil, fmt.Errorf("truncated genlmsghdr: %d bytes", len(body))
			}
			msg.Genl = genlMsgHdr{Cmd: body[0], Version: body[1]}
			msg.Payload = body[genlHdrLen:]
		}

		out = append(out, msg)
		buf = buf[align4(int(hdr.Len)):]
	}
	return out, nil
}

// nlMessage is one decoded netlink message: either a control message
// (NLMSG_ERROR/NLMSG_DONE, in Control) or a genl-family message (Genl +
// Payload).
type nlMessage struct {
	Header  nlMsgHdr
	Control []byte
	Genl    genlMsgHdr
	Payload []byte
}

func align4(n int) int {
	return (n + 3) &^ 3
}
