// Package wire owns the DPLL netlink attribute contract and parsing
// primitives.
//
// Ownership boundary:
// - nlattr encode/decode primitives
// - per-object attribute schema (device, pin)
// - multi-attribute aggregation and nested record parsing
// - enum code/label tables
package wire
