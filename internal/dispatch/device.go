package dispatch

import (
	"fmt"

	"github.com/orosp/iproute2/internal/output"
	"github.com/orosp/iproute2/internal/token"
	"github.com/orosp/iproute2/internal/transport"
	"github.com/orosp/iproute2/internal/wire"
)

var deviceShowKeywords = []keywordSpec{
	{name: "id", id: wire.DeviceID, kind: valU32},
}

var deviceSetKeywords = []keywordSpec{
	{name: "id", id: wire.DeviceID, kind: valU32},
	{name: "phase-offset-monitor", id: wire.DevicePhaseOffsetMonitor, kind: valBool},
	{name: "phase-offset-avg-factor", id: wire.DevicePhaseOffsetAvgFactor, kind: valU32},
}

var deviceIDGetKeywords = []keywordSpec{
	{name: "module-name", id: wire.DeviceModuleName, kind: valStr},
	{name: "clock-id", id: wire.DeviceClockID, kind: valU64},
	{name: "type", id: wire.DeviceType, kind: valEnum, enum: wire.DeviceTypeEnum},
}

// runDeviceShow implements "device show [id ID]": a single device when
// id is given, otherwise a dump of every device.
func runDeviceShow(c *Client, cursor *token.Cursor, sink output.Sink) error {
	result, err := runArgLoop(cursor, deviceShowKeywords, nil)
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

	reply, err := c.request("device", "get", wire.CmdDeviceGet, flags, payload)
	if err != nil {
		return classifyTransportError(err)
	}

	if single {
		if len(reply) == 0 {
			return newError(KernelError, "", fmt.Errorf("device not found"))
		}
		dev, err := wire.DecodeDevice(reply[0])
		if err != nil {
			return newError(DecodeError, "", err)
		}
		renderDevice(sink, dev, deviceHeader(dev.ID))
		return nil
	}

	sink.OpenArray("device")
	for _, raw := range reply {
		dev, err := wire.DecodeDevice(raw)
		if err != nil {
			logSoftDecodeError("device", err)
			continue
		}
		renderDevice(sink, dev, deviceHeader(dev.ID))
	}
	sink.CloseArray()
	return nil
}

// runDeviceSet implements "device set id ID [...]"; id is required.
func runDeviceSet(c *Client, cursor *token.Cursor) error {
	result, err := runArgLoop(cursor, deviceSetKeywords, nil)
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
	if _, err := c.request("device", "set", wire.CmdDeviceSet, 0, payload); err != nil {
		return classifyTransportError(err)
	}
	return nil
}

// runDeviceIDGet implements "device id-get [module-name ...] [...]": a
// lookup by non-id identifying attributes.
func runDeviceIDGet(c *Client, cursor *token.Cursor, sink output.Sink) error {
	result, err := runArgLoop(cursor, deviceIDGetKeywords, nil)
	if err != nil {
		return err
	}
	payload, err := result.builder.Finish()
	if err != nil {
		return newError(AllocationFailure, "", err)
	}

	reply, err := c.request("device", "id-get", wire.CmdDeviceIDGet, 0, payload)
	if err != nil {
		return classifyTransportError(err)
	}
	if len(reply) == 0 {
		return newError(KernelError, "", fmt.Errorf("no matching device"))
	}
	dev, err := wire.DecodeDevice(reply[0])
	if err != nil {
		return newError(DecodeError, "", err)
	}
	sink.OpenObject("")
	sink.FieldU("id", uint64(dev.ID))
	sink.CloseObject()
	return nil
}
