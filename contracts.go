// SPDX-License-Identifier: Unlicense OR MIT

package glbuf

import "github.com/cockroachdb/errors"

// ContractsEnabled reports whether the package was built with
// contract checking.
func ContractsEnabled() bool {
	return contractsEnabled
}

// contract panics with an assertion failure if cond is false. Call
// sites guard it with contractsEnabled so that release builds don't
// evaluate the arguments.
func contract(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf("glbuf: "+format, args...))
	}
}

// fatal panics regardless of the build configuration.
func fatal(format string, args ...interface{}) {
	panic(errors.Newf("glbuf: "+format, args...))
}
