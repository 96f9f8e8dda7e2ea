/*
Package atrepl/main provides an interactive console for the architecture
support table. It answers the four query forms over the built-in snapshot or
a table file, evaluates qlang feature-set expressions, and renders the
support matrix on the terminal. atrepl serves as a sandbox for inspecting
what a table parse produced.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'archtab.qlang'
func tracer() tracing.Trace {
	return tracing.Select("archtab.qlang")
}
