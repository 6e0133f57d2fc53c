package dispatch

import (
	"fmt"

	"github.com/orosp/iproute2/internal/numparse"
	"github.com/orosp/iproute2/internal/output"
	"github.com/orosp/iproute2/internal/token"
	"github.com/orosp/iproute2/internal/transport"
	"github.com/orosp/iproute2/internal/wire"
)

var pinShowKeywords = []keywordSpec{
	{name: "id", id: wire.PinID, kind: valU32},
	// "device" is a client-side post-filter (supplemented from dpll.c),
	// not a wire attribute; it is handled specially in runPinShow below
	// rather than through the generic argument loop.
}

var pinSetTopKeywords = []keywordSpec{
	{name: "id", id: wire.PinID, kind: valU32},
	{name: "frequency", id: wire.PinFrequency, kind: valU64},
	{name: "direction", id: wire.PinDirection, kind: valEnum, enum: wire.PinDirectionEnum},
	{name: "prio", id: wire.PinPrio, kind: valU32},
	{name: "state", id: wire.PinState, kind: valEnum, enum: wire.PinStateEnum},
	{name: "phase-adjust", id: wire.PinPhaseAdjust, kind: valS32},
	{name: "esync-frequency", id: wire.PinEsyncFrequency, kind: valU64},
}

var parentDeviceSubKeywords = []keywordSpec{
	{name: "direction", id: wire.PinDirection, kind: valEnum, enum: wire.PinDirectionEnum},
	{name: "prio", id: wire.PinPrio, kind: valU32},
	{name: "state", id: wire.PinState, kind: valEnum, enum: wire.PinStateEnum},
}

var parentPinSubKeywords = []keywordSpec{
	{name: "state", id: wire.PinState, kind: valEnum, enum: wire.PinStateEnum},
}

var referenceSyncSubKeywords = []keywordSpec{
	{name: "state", id: wire.PinState, kind: valEnum, enum: wire.PinStateEnum},
}

var pinSetNests = []nestSpec{
	{name: "parent-device", attrID: wire.PinParentDevice, idField: wire.PinParentID, subKeywords: parentDeviceSubKeywords},
	{name: "parent-pin", attrID: wire.PinParentPin, idField: wire.PinParentID, subKeywords: parentPinSubKeywords},
	{name: "reference-sync", attrID: wire.PinReferenceSync, idField: wire.PinID, subKeywords: referenceSyncSubKeywords},
}

var pinIDGetKeywords = []keywordSpec{
	{name: "module-name", id: wire.PinModuleName, kind: valStr},
	{name: "clock-id", id: wire.PinClockID, kind: valU64},
	{name: "board-label", id: wire.PinBoardLabel, kind: valStr},
	{name: "panel-label", id: wire.PinPanelLabel, kind: valStr},
	{name: "package-label", id: wire.PinPackageLabel, kind: valStr},
	{name: "type", id: wire.PinType, kind: valEnum, enum: wire.PinTypeEnum},
}

// runPinShow implements "pin show [id ID] [device ID]". The "device"
// filter is not a wire attribute: the kernel's PIN_GET dump carries no
// such filter, so it is applied client-side over the dumped pins,
// matching the legacy tool's "pin show device ID" form.
func runPinShow(c *Client, cursor *token.Cursor, sink output.Sink) error {
	var deviceFilter *uint32
	args, err := pinShowTokens(cursor, &deviceFilter)
	if err != nil {
		return err
	}

	result, err := runArgLoop(token.New(args), pinShowKeywords, nil)
	if err != nil {
		return err
	}
	payload, err := result.builder.Finish()
	if err != nil {
		return newError(AllocationFailure, "", err)
	}

	single := result.seen["id"]
	flags := uint16(0)
	if !single {
		flags = transport.FlagDump
	}

	reply, err := c.request("pin", "get", wire.CmdPinGet, flags, payload)
	if err != nil {
		return classifyTransportError(err)
	}

	if single {
		if len(reply) == 0 {
			return newError(KernelError, "", fmt.Errorf("pin not found"))
		}
		pin, err := wire.DecodePin(reply[0])
		if err != nil {
			return newError(DecodeError, "", err)
		}
		renderPin(sink, pin, pinHeader(pin.ID))
		return nil
	}

	sink.OpenArray("pin")
	for _, raw := range reply {
		pin, err := wire.DecodePin(raw)
		if err != nil {
			logSoftDecodeError("pin", err)
			continue
		}
		if deviceFilter != nil && !pinBelongsToDevice(pin, *deviceFilter) {
			continue
		}
		renderPin(sink, pin, pinHeader(pin.ID))
	}
	sink.CloseArray()
	return nil
}

// pinShowTokens strips a "device ID" pair out of the raw token list,
// returning the remaining tokens for the generic argument loop and
// setting *filter when a device id was given.
func pinShowTokens(cursor *token.Cursor, filter **uint32) ([]string, error) {
	var out []string
	for !cursor.Empty() {
		tok := *cursor.Take()
		if tok == "device" {
			next := cursor.Take()
			if next == nil {
				return nil, missingArgument("device")
			}
			id, err := numparse.ParseUint(*next, 32)
			if err != nil {
				return nil, invalidArgument("device", err)
			}
			v := uint32(id)
			*filter = &v
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

func pinBelongsToDevice(pin *wire.Pin, deviceID uint32) bool {
	for _, pd := range pin.ParentDevice {
		if pd.ParentID == deviceID {
			return true
		}
	}
	return false
}

// runPinSet implements "pin set id ID [...]"; id is required.
func runPinSet(c *Client, cursor *token.Cursor) error {
	result, err := runArgLoop(cursor, pinSetTopKeywords, pinSetNests)
	if err != nil {
		return err
	}
	if !result.seen["id"] {
		return missingArgument("id")
	}
	payload, err := result.builder.Finish()
	if err != nil {
		return newError(AllocationFailure, "", err)
	}
	if _, err := c.request("pin", "set", wire.CmdPinSet, 0, payload); err != nil {
		return classifyTransportError(err)
	}
	return nil
}

// runPinIDGet implements "pin id-get [module-name ...] [...]".
func runPinIDGet(c *Client, cursor *token.Cursor, sink output.Sink) error {
	result, err := runArgLoop(cursor, pinIDGetKeywords, nil)
	if err != nil {
		return err
	}
	payload, err := result.builder.Finish()
	if err != nil {
		return newError(AllocationFailure, "", err)
	}

	reply, err := c.request("pin", "id-get", wire.CmdPinIDGet, 0, payload)
	if err != nil {
		return classifyTransportError(err)
	}
	if len(reply) == 0 {
		return newError(KernelError, "", fmt.Errorf("no matching pin"))
	}
	pin, err := wire.DecodePin(reply[0])
	if err != nil {
		return newError(DecodeError, "", err)
	}
	sink.OpenObject("")
	sink.FieldU("id", uint64(pin.ID))
	sink.CloseObject()
	return nil
}
