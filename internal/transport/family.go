package transport

import (
	"encoding/binary"
	"fmt"

	"github.com/orosp/iproute2/internal/wire"
)

// genlIDCtrl is the well-known generic-netlink controller family id,
// fixed by the kernel (GENL_ID_CTRL).
const genlIDCtrl uint16 = wire.GenlCtrlFamilyID

// familyInfo is what resolveFamily learns from CTRL_CMD_GETFAMILY: the
// dynamically assigned family id for "dpll" and the multicast group id
// for its "monitor" group.
type familyInfo struct {
	FamilyID     uint16
	MonitorGroup uint32
}

// resolveFamily asks the generic-netlink controller for the dpll
// family's id and its monitor multicast group id. This must run once
// per socket before any device/pin request, since the family id is not
// a fixed constant.
func resolveFamily(sock *socket, seq uint32) (familyInfo, error) {
	nameAttr, err := wire.EncodeAttr(wire.NewStr(wire.CtrlAttrFamilyName, wire.FamilyName))
	if err != nil {
		return familyInfo{}, fmt.Errorf("encoding family name attribute: %w", err)
	}

	req := buildMessage(genlIDCtrl, nlmFRequest, seq, wire.CtrlCmdGetFamily, nameAttr)
	if err := sock.send(req); err != nil {
		return familyInfo{}, err
	}

	buf, err := sock.recv(defaultRecvTimeout)
	if err != nil {
		return familyInfo{}, fmt.Errorf("receiving family resolution reply: %w", err)
	}
	msgs, err := parseMessages(buf)
	if err != nil {
		return familyInfo{}, fmt.Errorf("parsing family resolution reply: %w", err)
	}

	for _, msg := range msgs {
		if msg.Control != nil {
			if err := controlError(msg); err != nil {
				return familyInfo{}, err
			}
			continue
		}
		info, ok, err := parseFamilyInfo(msg.Payload)
		if err != nil {
			return familyInfo{}, err
		}
		if ok {
			return info, nil
		}
	}
	return familyInfo{}, ErrUnavailable
}

func parseFamilyInfo(payload []byte) (familyInfo, bool, error) {
	attrs, err := wire.DecodeAttrs(payload)
	if err != nil {
		return familyInfo{}, false, fmt.Errorf("decoding family resolution attributes: %w", err)
	}

	idAttr, ok := wire.GetAttr(attrs, wire.CtrlAttrFamilyID)
	if !ok {
		return familyInfo{}, false, nil
	}
	familyID, err := decodeU16(idAttr.Value)
	if err != nil {
		return familyInfo{}, false, fmt.Errorf("decoding family id: %w", err)
	}

	var monitorGroup uint32
	if groupsAttr, ok := wire.GetAttr(attrs, wire.CtrlAttrMcastGroups); ok {
		groups, err := wire.DecodeAttrs(groupsAttr.Value)
		if err != nil {
			return familyInfo{}, false, fmt.Errorf("decoding multicast groups: %w", err)
		}
		for _, group := range groups {
			entry, err := wire.DecodeAttrs(group.Value)
			if err != nil {
				continue
			}
			nameAttr, ok := wire.GetAttr(entry, wire.CtrlAttrMcastGrpName)
			if !ok || wire.Str(nameAttr.Value) != wire.MonitorGroup {
				continue
			}
			if idAttr, ok := wire.GetAttr(entry, wire.CtrlAttrMcastGrpID); ok {
				if v, err := wire.U32(idAttr.Value); err == nil {
					monitorGroup = v
				}
			}
		}
	}

	return familyInfo{FamilyID: familyID, MonitorGroup: monitorGroup}, true, nil
}

func decodeU16(v []byte) (uint16, error) {
	if len(v) < 2 {
		return 0, fmt.Errorf("short u16 value: %d bytes", len(v))
	}
	return binary.NativeEndian.Uint16(v[:2]), nil
}

// controlError turns an NLMSG_ERROR control message into a Go error.
// NLMSG_DONE carries the same 4-byte errno shape but with errno 0; it
// is not an error and yields nil.
func controlError(msg nlMessage) error {
	if len(msg.Control) < 4 {
		return fmt.Errorf("truncated control message: %d bytes", len(msg.Control))
	}
	errno := int32(binary.NativeEndian.Uint32(msg.Control[:4]))
	if errno == 0 {
		return nil
	}
	return &KernelError{Errno: errno}
}
