package transport

import (
	"fmt"
	"time"
)

// defaultRecvTimeout bounds a single request/reply round trip when the
// caller does not supply its own.
const defaultRecvTimeout = 5 * time.Second

// Client is the transport-layer handle the dispatcher holds for the
// lifetime of one invocation: one bound socket plus the resolved dpll
// family id and monitor group id.
type Client struct {
	sock         *socket
	seq          uint32
	familyID     uint16
	monitorGroup uint32
	recvTimeout  time.Duration
}

// Open creates a socket and resolves the dpll family. recvTimeout
// bounds every subsequent Request call; pass 0 to use
// defaultRecvTimeout.
func Open(recvTimeout time.Duration) (*Client, error) {
	sock, err := openSocket()
	if err != nil {
		return nil, err
	}
	if recvTimeout <= 0 {
		recvTimeout = defaultRecvTimeout
	}

	c := &Client{sock: sock, recvTimeout: recvTimeout}
	info, err := resolveFamily(sock, c.nextSeq())
	if err != nil {
		_ = sock.close()
		return nil, err
	}
	c.familyID = info.FamilyID
	c.monitorGroup = info.MonitorGroup
	return c, nil
}

// Close releases the underlying socket.
func (c *Client) Close() error {
	return c.sock.close()
}

func (c *Client) nextSeq() uint32 {
	c.seq++
	return c.seq
}

// Dump flag, exported for callers building a request that should
// enumerate every instance rather than filter by id.
const FlagDump = nlmFDump

// Request sends one command with the given attribute payload and flags,
// and returns the raw attribute payload of every genl-family message in
// the reply (more than one for a dump, at most one otherwise; none for
// a SET, whose only reply is the ACK). nlmFAck
// is always ORed in alongside flags: a SET command has no data reply of
// its own, so its success is signaled solely by the kernel's ACK, which
// the kernel only emits when NLM_F_ACK was requested. It returns
// *KernelError when the kernel answers with NLMSG_ERROR.
func (c *Client) Request(cmd uint8, flags uint16, attrs []byte) ([][]byte, error) {
	seq := c.nextSeq()
	msg := buildMessage(c.familyID, flags|nlmFRequest|nlmFAck, seq, cmd, attrs)
	if err := c.sock.send(msg); err != nil {
		return nil, err
	}

	var payloads [][]byte
	dump := flags&nlmFDump != 0
	for {
		buf, err := c.sock.recv(c.recvTimeout)
		if err != nil {
			return nil, fmt.Errorf("receiving reply: %w", err)
		}
		msgs, err := parseMessages(buf)
		if err != nil {
			return nil, fmt.Errorf("parsing reply: %w", err)
		}

		done := false
		for _, m := range msgs {
			if m.Control != nil {
				if err := controlError(m); err != nil {
					return nil, err
				}
				if m.Header.Type == nlmsgDone {
					done = true
				}
				continue
			}
			payloads = append(payloads, m.Payload)
		}
		if !dump || done {
			break
		}
	}
	return payloads, nil
}

// JoinMonitorGroup subscribes to the dpll "monitor" multicast group.
// The resolved group id is zero when the kernel's CTRL_CMD_GETFAMILY
// reply carried no such group, in which case JoinMonitorGroup returns
// an error.
func (c *Client) JoinMonitorGroup() error {
	if c.monitorGroup == 0 {
		return fmt.Errorf("dpll family does not advertise a monitor multicast group")
	}
	return c.sock.joinGroup(c.monitorGroup)
}

// LeaveMonitorGroup unsubscribes from the monitor multicast group.
func (c *Client) LeaveMonitorGroup() error {
	if c.monitorGroup == 0 {
		return nil
	}
	return c.sock.leaveGroup(c.monitorGroup)
}

// RecvNotification waits up to timeout for one multicast notification
// message. It returns (nil, nil) on a plain timeout so the notification
// loop can re-check its cancellation context and try again.
func (c *Client) RecvNotification(timeout time.Duration) ([]byte, uint8, error) {
	buf, err := c.sock.recv(timeout)
	if err != nil {
		if IsTimeout(err) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	msgs, err := parseMessages(buf)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing notification: %w", err)
	}
	for _, m := range msgs {
		if m.Control != nil {
			continue
		}
		return m.Payload, m.Genl.Cmd, nil
	}
	return nil, 0, nil
}
