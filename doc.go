/*
Package archtab ingests the GCC table "Status of Supported Architectures
from Maintainers' Point of View" and answers queries against it.

The upstream document is an ASCII table maintained by hand: one row per
target architecture, one single-letter column per status criterion, cells
marked with a glyph where the criterion applies. archtab turns that text
into a bit-packed support matrix and exposes lookups over it. Package
structure is as follows:

■ scanner: Package scanner classifies the raw table text line by line and
splits content lines into cells, using the column rule as the structural
reference.

■ table: Package table parses classified lines into feature names,
architecture names and support markers, and builds the immutable Matrix.

■ query: Package query answers the four query forms over a Matrix and
provides bitmap set algebra over architecture sets.

■ legend: Package legend carries the upstream descriptions for the
single-letter criterion codes.

■ qlang: Package qlang implements a small expression language over
feature sets, with an interactive console in sub-package atrepl.

The base package contains data types shared throughout all the other
packages, and the embedded snapshot of the upstream table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package archtab
