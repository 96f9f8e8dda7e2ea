package table

import (
	"sync"

	"github.com/npillmayer/archtab"
)

var builtinOnce sync.Once
var builtinMatrix *Matrix
var builtinErr error

// Builtin returns the support matrix for the embedded snapshot of the
// upstream GCC table (archtab.BackendsTable). The snapshot is parsed once;
// all callers share the resulting immutable matrix.
func Builtin() (*Matrix, error) {
	builtinOnce.Do(func() {
		builtinMatrix, builtinErr = Parse("backends.txt", archtab.BackendsTable)
		if builtinErr != nil {
			tracer().Errorf("embedded backends snapshot does not parse: %v", builtinErr)
			return
		}
		tracer().Infof("builtin support matrix %s, %d architectures x %d features",
			builtinMatrix.Fingerprint(), builtinMatrix.M(), builtinMatrix.N())
	})
	return builtinMatrix, builtinErr
}
