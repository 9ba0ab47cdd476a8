/*
Package otquery answers questions about a loaded font: nominal vertical
metrics, glyph indices and glyph advances.

Most queries decode the raw table bytes directly, without an intermediate
table model. Functions which may fail on a malformed font return a boolean
or an error; none of them panic on short tables.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'outlinesvg.font'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg.font")
}
