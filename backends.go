package archtab

import _ "embed"

// BackendsTable is an embedded snapshot of the upstream table
// (https://gcc.gnu.org/backends.html), normalized to the column convention
// this module parses: a corner label, 24 single-letter criterion columns
// separated by '|', one column rule under the header, '*' for supported and
// '?' for uncertain cells. The snapshot is never modified at runtime;
// table.Builtin parses it once and shares the resulting matrix.
//
//go:embed backends.txt
var BackendsTable string
