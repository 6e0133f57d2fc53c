package transport

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// socket wraps one AF_NETLINK/NETLINK_GENERIC file descriptor. It is
// not safe for concurrent use; the dispatcher serializes request/reply
// pairs, and the notification loop reads from the same socket.
type socket struct {
	fd  int
	pid uint32
}

// openSocket creates, binds, and returns a netlink generic socket.
func openSocket() (*socket, error) {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.NETLINK_GENERIC)
	if err != nil {
		return nil, fmt.Errorf("opening netlink socket: %w", err)
	}

	addr := &unix.SockaddrNetlink{Family: unix.AF_NETLINK}
	if err := unix.Bind(fd, addr); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("binding netlink socket: %w", err)
	}

	bound, err := unix.Getsockname(fd)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("reading bound netlink address: %w", err)
	}
	nl, ok := bound.(*unix.SockaddrNetlink)
	if !ok {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("unexpected socket address type %T", bound)
	}

	return &socket{fd: fd, pid: nl.Pid}, nil
}

// close releases the file descriptor.
func (s *socket) close() error {
	return unix.Close(s.fd)
}

// send writes one complete netlink message.
func (s *socket) send(msg []byte) error {
	sa := &unix.SockaddrNetlink{Family: unix.AF_NETLINK}
	if err := unix.Sendto(s.fd, msg, 0, sa); err != nil {
		return fmt.Errorf("sending netlink message: %w", err)
	}
	return nil
}

// recv reads one datagram (which may carry several concatenated
// netlink messages) within timeout. A zero timeout blocks indefinitely.
func (s *socket) recv(timeout time.Duration) ([]byte, error) {
	if err := s.setReadTimeout(timeout); err != nil {
		return nil, err
	}
	buf := make([]byte, 1<<16)
	n, _, err := unix.Recvfrom(s.fd, buf, 0)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return nil, errTimeout
		}
		return nil, fmt.Errorf("reading netlink message: %w", err)
	}
	return buf[:n], nil
}

func (s *socket) setReadTimeout(timeout time.Duration) error {
	tv := unix.NsecToTimeval(int64(timeout))
	if err := unix.SetsockoptTimeval(s.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		return fmt.Errorf("setting receive timeout: %w", err)
	}
	return nil
}

// joinGroup subscribes the socket to a multicast group, the mechanism
// the notification loop uses instead of polling.
func (s *socket) joinGroup(groupID uint32) error {
	if err := unix.SetsockoptInt(s.fd, unix.SOL_NETLINK, unix.NETLINK_ADD_MEMBERSHIP, int(groupID)); err != nil {
		return fmt.Errorf("joining multicast group %d: %w", groupID, err)
	}
	return nil
}

// leaveGroup unsubscribes from a multicast group.
func (s *socket) leaveGroup(groupID uint32) error {
	if err := unix.SetsockoptInt(s.fd, unix.SOL_NETLINK, unix.NETLINK_DROP_MEMBERSHIP, int(groupID)); err != nil {
		return fmt.Errorf("leaving multicast group %d: %w", groupID, err)
	}
	return nil
}
