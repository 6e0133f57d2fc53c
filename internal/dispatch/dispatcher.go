package dispatch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/orosp/iproute2/internal/metrics"
	"github.com/orosp/iproute2/internal/output"
	"github.com/orosp/iproute2/internal/token"
	"github.com/orosp/iproute2/internal/transport"
)

// requester is the subset of *transport.Client the executors need. It
// exists so tests can drive device.go/pin.go/monitor.go against a fake
// without opening a real netlink socket.
type requester interface {
	Request(cmd uint8, flags uint16, attrs []byte) ([][]byte, error)
	JoinMonitorGroup() error
	LeaveMonitorGroup() error
	RecvNotification(timeout time.Duration) ([]byte, uint8, error)
}

// Client wraps the transport layer with the recv timeout configured for
// this invocation. Object-level "help" never constructs one: that is
// the offline-help guarantee spec.md's testable property #4 describes.
type Client struct {
	transport   requester
	closer      func() error
	monitorTick time.Duration
}

// SetMonitorTick overrides how long the "monitor" notification loop
// waits on each RecvNotification call before re-checking cancellation.
// A non-positive value leaves the package default in place.
func (c *Client) SetMonitorTick(d time.Duration) {
	if d > 0 {
		c.monitorTick = d
	}
}

// Open opens the netlink transport and resolves the dpll family.
func Open(recvTimeout time.Duration) (*Client, error) {
	t, err := transport.Open(recvTimeout)
	if err != nil {
		return nil, newError(TransportUnavailable, "", err)
	}
	return &Client{transport: t, closer: t.Close}, nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// request sends one command and records its outcome and round-trip
// duration under the given object/command labels, so the full exercise
// of a CLI invocation is visible to DPLLCTL_METRICS_ADDR regardless of which
// executor issued it.
func (c *Client) request(object, command string, cmd uint8, flags uint16, attrs []byte) ([][]byte, error) {
	start := time.Now()
	reply, err := c.transport.Request(cmd, flags, attrs)
	outcome := "ok"
	if err != nil {
		if _, ok := err.(*transport.KernelError); ok {
			outcome = "kernel-error"
		} else {
			outcome = "transport-error"
		}
	}
	metrics.RecordRequest(object, command, outcome, time.Since(start))
	return reply, err
}

// NeedsTransport reports whether args, the argument vector following
// any global flags, requires a live transport to execute. help variants
// at any level do not.
func NeedsTransport(args []string) bool {
	return !(len(args) == 0 || isHelpInvocation(args))
}

func isHelpInvocation(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	return args[len(args)-1] == "help"
}

// Dispatch runs one command: object token, verb token, then the
// argument loop, in the order spec.md §4.8 describes. c may be nil only
// when args resolves to a help invocation.
func Dispatch(ctx context.Context, c *Client, args []string, sink output.Sink) error {
	cursor := token.New(args)

	if cursor.Empty() || cursor.Match("help") {
		return runHelp()
	}

	object := *cursor.Take()
	switch object {
	case "device":
		return dispatchDevice(c, cursor, sink)
	case "pin":
		return dispatchPin(c, cursor, sink)
	case "monitor":
		return runMonitor(ctx, c, cursor, sink)
	case "help":
		return runHelp()
	default:
		return usageErrorf("unknown object %q (want device, pin, monitor, or help)", object)
	}
}

func dispatchDevice(c *Client, cursor *token.Cursor, sink output.Sink) error {
	if cursor.Empty() || cursor.Match("help") || endsInHelp(cursor) {
		return runDeviceHelp()
	}
	verb := *cursor.Take()
	switch verb {
	case "show":
		return runDeviceShow(c, cursor, sink)
	case "set":
		return runDeviceSet(c, cursor)
	case "id-get":
		return runDeviceIDGet(c, cursor, sink)
	case "help":
		return runDeviceHelp()
	default:
		return usageErrorf("unknown device verb %q (want show, set, id-get, or help)", verb)
	}
}

func dispatchPin(c *Client, cursor *token.Cursor, sink output.Sink) error {
	if cursor.Empty() || cursor.Match("help") || endsInHelp(cursor) {
		return runPinHelp()
	}
	verb := *cursor.Take()
	switch verb {
	case "show":
		return runPinShow(c, cursor, sink)
	case "set":
		return runPinSet(c, cursor)
	case "id-get":
		return runPinIDGet(c, cursor, sink)
	case "help":
		return runPinHelp()
	default:
		return usageErrorf("unknown pin verb %q (want show, set, id-get, or help)", verb)
	}
}

func endsInHelp(cursor *token.Cursor) bool {
	tail := cursor.Tail()
	return tail != nil && *tail == "help"
}

// classifyTransportError maps a transport-layer error onto the
// dispatch-layer Kind taxonomy.
func classifyTransportError(err error) error {
	var kernelErr *transport.KernelError
	if ok := asKernelError(err, &kernelErr); ok {
		return newError(KernelError, "", kernelErr)
	}
	return newError(TransportUnavailable, "", err)
}

func asKernelError(err error, target **transport.KernelError) bool {
	ke, ok := err.(*transport.KernelError)
	if ok {
		*target = ke
	}
	return ok
}

func logSoftDecodeError(object string, err error) {
	log.Warn().Str("object", object).Err(err).Msg("skipping dump element with undecodable attributes")
}
