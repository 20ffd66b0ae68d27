// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd || windows

package gl

import "github.com/go-gl/glfw/v3.3/glfw"

// CurrentContext reports whether a GLFW window has its OpenGL context
// current on the calling thread.
func CurrentContext() bool {
	return glfw.GetCurrentContext() != nil
}
