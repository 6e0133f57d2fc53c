package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/orosp/iproute2/internal/metrics"
	"github.com/orosp/iproute2/internal/output"
	"github.com/orosp/iproute2/internal/token"
	"github.com/orosp/iproute2/internal/wire"
)

// monitorTick is how long RecvNotification waits before re-checking
// cancellation, "on the order of one second" per spec.md.
const monitorTick = time.Second

// runMonitor subscribes to the dpll "monitor" multicast group and
// renders notifications until ctx is cancelled or the transport fails.
// It closes the output array scope it opens on entry before returning,
// whichever way the loop ends.
func runMonitor(ctx context.Context, c *Client, cursor *token.Cursor, sink output.Sink) error {
	if !cursor.Empty() {
		return usageErrorf("monitor takes no arguments")
	}

	if err := c.transport.JoinMonitorGroup(); err != nil {
		return newError(TransportUnavailable, "", err)
	}
	defer func() {
		if err := c.transport.LeaveMonitorGroup(); err != nil {
			log.Warn().Err(err).Msg("failed to leave monitor multicast group")
		}
	}()

	tick := monitorTick
	if c.monitorTick > 0 {
		tick = c.monitorTick
	}

	sink.OpenArray("monitor")
	defer sink.CloseArray()

	for {
		if ctx.Err() != nil {
			return nil
		}

		payload, cmd, err := c.transport.RecvNotification(tick)
		if err != nil {
			log.Error().Err(err).Msg("monitor loop: unrecoverable transport error")
			return nil
		}
		if payload == nil {
			continue
		}

		kind, ok := wire.EventKindForCommand(cmd)
		if !ok {
			log.Warn().Uint8("cmd", cmd).Msg("monitor loop: skipping unknown event kind")
			metrics.RecordNotification("unknown")
			continue
		}

		event, err := decodeNotification(kind, payload)
		if err != nil {
			log.Warn().Err(err).Str("kind", kind.String()).Msg("monitor loop: skipping undecodable event")
			continue
		}
		renderNotification(sink, event)
		metrics.RecordNotification(kind.String())
	}
}

func decodeNotification(kind wire.EventKind, payload []byte) (wire.NotificationEvent, error) {
	switch kind {
	case wire.EventDeviceCreate, wire.EventDeviceChange, wire.EventDeviceDelete:
		dev, err := wire.DecodeDevice(payload)
		if err != nil {
			return wire.NotificationEvent{}, err
		}
		return wire.NotificationEvent{Kind: kind, Device: dev}, nil
	case wire.EventPinCreate, wire.EventPinChange, wire.EventPinDelete:
		pin, err := wire.DecodePin(payload)
		if err != nil {
			return wire.NotificationEvent{}, err
		}
		return wire.NotificationEvent{Kind: kind, Pin: pin}, nil
	default:
		return wire.NotificationEvent{}, fmt.Errorf("unhandled event kind %v", kind)
	}
}

func renderNotification(sink output.Sink, event wire.NotificationEvent) {
	switch {
	case event.Device != nil:
		renderDevice(sink, event.Device, fmt.Sprintf("%s %s", event.Kind, deviceHeader(event.Device.ID)))
	case event.Pin != nil:
		renderPin(sink, event.Pin, fmt.Sprintf("%s %s", event.Kind, pinHeader(event.Pin.ID)))
	}
}
