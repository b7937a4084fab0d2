// Package dbuscodegen generates target-language source code that
// marshals values of a bus-IPC wire type onto a message iterator.
//
// The package works from a [Signature], a parsed form of the textual
// type grammar used by bus-IPC protocols such as D-Bus ('i' for a
// 32-bit int, 'a' for array-of-next, '(...)' for a struct, '{...}' for
// a dict entry, and so on). Given a [Cursor] into a signature and a
// [Target] describing how the output language spells its types,
// [Generate] emits a block of code that serializes a correspondingly
// typed value, and reports which input and local variables the
// emitted code requires.
//
// [Generate] is purely synchronous and allocation-only: it returns an
// error only when the signature cursor names a tag the dispatcher does
// not know how to marshal, which is a contract violation by the
// caller (signatures are assumed pre-validated upstream). Multiple
// generations may run concurrently over independent cursors; there is
// no shared mutable state.
//
// [Function] wraps one top-level [Generate] call into a complete,
// emittable function declaration, ready to paste into an output file.
package dbuscodegen
