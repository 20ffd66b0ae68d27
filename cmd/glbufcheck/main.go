// SPDX-License-Identifier: Unlicense OR MIT

// Command glbufcheck opens a hidden window, uploads a vertex buffer and
// an index buffer to a vertex array through glbuf and prints the
// resulting state.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v2"

	"gioui.org/glbuf"
	"gioui.org/glbuf/driver"
	"gioui.org/glbuf/opengl"
)

func init() {
	// GLFW and the OpenGL context are bound to the main thread.
	runtime.LockOSThread()
}

var (
	sizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "vertex buffer size in bytes, rounded down to whole vertices",
		Value: 1024,
	}
	usageFlag = &cli.StringFlag{
		Name:  "usage",
		Usage: "usage hint of the vertex buffer, such as static-draw or dynamic-draw",
		Value: "static-draw",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
		Value: 64,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
		Value: 64,
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log allocations and releases",
	}
)

func main() {
	app := &cli.App{
		Name:   "glbufcheck",
		Usage:  "exercise glbuf against the OpenGL driver",
		Flags:  []cli.Flag{sizeFlag, usageFlag, widthFlag, heightFlag, verboseFlag},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	usage, err := parseUsage(ctx.String(usageFlag.Name))
	if err != nil {
		return err
	}
	size := ctx.Int(sizeFlag.Name)
	if size < 0 {
		return errors.Newf("negative size %d", size)
	}
	glbuf.SetLogger(newLogger(os.Stderr, ctx.Bool(verboseFlag.Name)))

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw")
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(ctx.Int(widthFlag.Name), ctx.Int(heightFlag.Name), "glbufcheck", nil, nil)
	if err != nil {
		return errors.Wrap(err, "glfw")
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	ver := dev.Version()
	fmt.Fprintf(ctx.App.Writer, "renderer: %s (OpenGL %d.%d)\n", dev.Renderer(), ver[0], ver[1])
	if err := check(ctx.App.Writer, dev, size, usage); err != nil {
		return err
	}
	return dev.Err()
}

// check builds a vertex array holding size bytes of positions with 3
// float components each, and an index buffer over them.
func check(w io.Writer, dev driver.Device, size int, usage driver.Usage) error {
	const stride = 3 * 4
	n := size / stride
	positions := make([]float32, n*3)
	for i := range positions {
		positions[i] = float32(i)
	}
	indices := make([]uint16, n)
	for i := range indices {
		indices[i] = uint16(i)
	}

	vbo := glbuf.NewArrayBuffer(dev)
	bctx := vbo.Bind()
	glbuf.UploadSlice(bctx, positions, usage)
	bctx.Unbind()

	ebo := glbuf.NewElementBuffer(dev)
	bctx = ebo.Bind()
	glbuf.UploadIndices(bctx, indices, driver.UsageStaticDraw)
	bctx.Unbind()

	vao := glbuf.NewVertexArray(dev)
	defer vao.Release()
	vctx := vao.Bind()
	vctx.Attach(vbo).AttributePointer(0, 3, driver.DataTypeFloat, stride, 0).Done()
	vctx.Attach(ebo).AsElement().Done()
	vctx.Unbind()

	for i := 0; i < vao.Len(); i++ {
		s := vao.Storage(i)
		b := s.Buffer()
		obj, _ := b.Object()
		fmt.Fprintf(w, "buffer %d: target=%v size=%d usage=%v attributes=%v element=%v\n",
			obj, b.Target(), b.Size(), b.Usage(), s.Attributes(), s.IsElement())
	}
	pos, ok := vao.AttributeBuffer(0)
	if !ok {
		return errors.New("attribute 0 has no buffer")
	}
	if pos.Size() != n*stride {
		return errors.Newf("vertex buffer holds %d bytes, expected %d", pos.Size(), n*stride)
	}
	if _, ok := vao.ElementBuffer(); !ok {
		return errors.New("no element buffer attached")
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

var usages = map[string]driver.Usage{
	"stream-draw":  driver.UsageStreamDraw,
	"stream-read":  driver.UsageStreamRead,
	"stream-copy":  driver.UsageStreamCopy,
	"static-draw":  driver.UsageStaticDraw,
	"static-read":  driver.UsageStaticRead,
	"static-copy":  driver.UsageStaticCopy,
	"dynamic-draw": driver.UsageDynamicDraw,
	"dynamic-read": driver.UsageDynamicRead,
	"dynamic-copy": driver.UsageDynamicCopy,
}

func parseUsage(s string) (driver.Usage, error) {
	u, ok := usages[s]
	if !ok {
		return driver.UsageNone, errors.Newf("unknown usage %q", s)
	}
	return u, nil
}
