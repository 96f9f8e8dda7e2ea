/*
Package legend carries the criteria legend of the upstream GCC table.

Every feature column of the table is headed by a single-letter code; the
upstream document explains the codes in a list above the table. This package
holds that list, in upstream order, so that query results can be printed
with their meaning attached.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package legend

import "fmt"

// Entry is one criterion of the upstream legend: its single-letter column
// code and the upstream description.
type Entry struct {
	Code        string
	Description string
}

// String formats an entry the way the upstream tool prints feature lines.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// entries in upstream order: the capital-letter hardware criteria first,
// then the lowercase port-internals criteria.
var entries = []Entry{
	{"H", "a hardware implementation does not exist"},
	{"M", "a hardware implementation is not currently being manufactured"},
	{"S", "a free simulator does not exist"},
	{"L", "integer registers are narrower than 32 bits"},
	{"Q", "integer registers are at least 64 bits wide"},
	{"N", "memory is not byte addressable, and/or bytes are not eight bits"},
	{"F", "floating point arithmetic is not included in the instruction set"},
	{"I", "architecture does not use IEEE format floating point numbers"},
	{"C", "architecture does not have a single condition code register"},
	{"B", "architecture has delay slots"},
	{"D", "architecture has a stack that grows upward"},
	{"l", "port cannot use ILP32 mode integer arithmetic"},
	{"q", "port can use LP64 mode integer arithmetic"},
	{"r", "port can switch between ILP32 and LP64 at runtime"},
	{"p", "port uses `define_peephole` (as opposed to `define_peephole2`)"},
	{"b", "port uses \"* ...\" notation for output template code"},
	{"f", "port does not define prologue and/or epilogue RTL expanders"},
	{"m", "port does not use `define_constants`"},
	{"g", "port does not define `TARGET_ASM_FUNCTION_(PRO|EPI)LOGUE`"},
	{"i", "port generates multiple inheritance thunks using `TARGET_ASM_OUTPUT_MI(_VCALL)_THUNK`"},
	{"a", "port uses LRA (by default, i.e. unless overriden by a switch)"},
	{"t", "all instructions either produce exactly one assembly instructions, or trigger a `define_split`"},
	{"e", "`<arch>-elf` is not a supported target"},
	{"s", "`<arch>-elf` is the correct target to use with the simulator in `/cvs/src`"},
}

var byCode = index()

func index() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Code] = e
	}
	return m
}

// Entries returns the legend in upstream order.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}

// Lookup returns the entry for a code, matched exactly. Codes are
// case-sensitive: 'M' and 'm' are different criteria.
func Lookup(code string) (Entry, bool) {
	e, ok := byCode[code]
	return e, ok
}

// Describe returns the upstream description for a code.
func Describe(code string) (string, bool) {
	e, ok := byCode[code]
	return e.Description, ok
}
