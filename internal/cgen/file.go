// Package cgen assembles the output of one or more
// [dbuscodegen.Function] calls into a single emittable C source file.
//
// It is adapted from the teacher's internal/dbusgen, which performs
// the analogous job for generated Go client stubs: a small buffer
// wrapped in a type with terse write helpers, built up function by
// function. The output here is C, not Go, so unlike dbusgen this
// package never runs a formatter over the result: the target
// language's own formatter is treated as an external collaborator
// outside this tool's scope, and C has no standard equivalent of
// go/format to reach for regardless.
package cgen

import (
	"fmt"
	"strings"
)

// A File accumulates generated functions into one translation unit,
// in the order they're added.
type File struct {
	headers []string
	out     strings.Builder
}

// New returns an empty File that will #include each of headers, in
// order, before any generated function.
func New(headers ...string) *File {
	return &File{headers: headers}
}

// Function starts the file's entry for one generated function: it
// writes the #include preamble if nothing has been written yet, then
// doc (if non-empty) and a comment naming the signature marshalled.
// The rendered function text itself (as returned by
// [dbuscodegen.Function]) is appended by a following call to Raw.
func (f *File) Function(signature, doc string) {
	if f.out.Len() == 0 {
		f.writePreamble()
	}
	if doc != "" {
		f.s("/* ")
		f.s(doc)
		f.s(" */\n")
	}
	f.f("/* marshals signature %q */\n", signature)
}

// Raw appends pre-rendered function text verbatim, after any doc
// comment written by a prior call to Function. Generators call Raw
// immediately after Function with the string Function itself doesn't
// take, keeping this package ignorant of dbuscodegen's types.
func (f *File) Raw(code string) {
	f.s(code)
	f.s("\n")
}

func (f *File) writePreamble() {
	for _, h := range f.headers {
		f.f("#include %s\n", h)
	}
	if len(f.headers) > 0 {
		f.s("\n")
	}
}

func (f *File) s(s string) { f.out.WriteString(s) }
func (f *File) f(format string, args ...any) {
	fmt.Fprintf(&f.out, format, args...)
}

// String returns the assembled file contents.
func (f *File) String() string {
	if f.out.Len() == 0 {
		f.writePreamble()
	}
	return f.out.String()
}
