// Package query reads, filters and aggregates parsed tasks.
//
// Everything here is pure: no I/O, no retained state. Values are compared as
// text, which orders YYYY-MM-DD dates correctly and is applied uniformly to
// every property. Unknown property, operator or operation names never fail;
// they produce "absent" (or false for conditions).
package query
