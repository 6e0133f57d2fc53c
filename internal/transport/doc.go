// Package transport owns the raw AF_NETLINK socket: opening it,
// resolving the dpll generic-netlink family id and its "monitor"
// multicast group, sending one request and collecting its reply (a
// single message or a dump's sequence of messages terminated by
// NLMSG_DONE), and joining/leaving the multicast group the notification
// loop reads from.
//
// Ownership boundary: everything below nlmsghdr/genlmsghdr framing
// lives here. internal/wire owns everything above it (nlattr encoding
// and the typed device/pin schema); transport only hands wire raw
// attribute payloads and receives raw attribute payloads back.
package transport
