package transport

import (
	"errors"
	"fmt"
)

// errTimeout signals that a receive deadline elapsed with no datagram
// available. Callers that poll (the notification loop) treat this as
// "nothing yet"; callers expecting a reply (Request) treat it as a
// hard failure.
var errTimeout = errors.New("transport: receive timed out")

// IsTimeout reports whether err is the sentinel recv timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, errTimeout)
}

// KernelError wraps an errno the kernel returned in an NLMSG_ERROR
// reply, e.g. a set request the kernel rejected.
type KernelError struct {
	Errno int32
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("kernel rejected request: errno %d", -e.Errno)
}

// ErrUnavailable indicates the dpll generic-netlink family could not be
// resolved, meaning the kernel module isn't loaded or there are no dpll
// devices on this system.
var ErrUnavailable = errors.New("transport: dpll netlink family unavailable")
