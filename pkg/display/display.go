// Package display opens rendered charts in the desktop image viewer.
package display

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
)

// ErrHeadless is returned when no graphical display is available.
var ErrHeadless = errors.New("no graphical display available")

// Viewer launches an external program to show an image.
type Viewer struct {
	goos   string
	getenv func(string) string
	start  func(ctx context.Context, name string, args ...string) error
}

// NewViewer creates a Viewer for the current platform.
func NewViewer() *Viewer {
	return &Viewer{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		start:  startDetached,
	}
}

// Available reports whether a display is present. Linux and the BSDs need
// an X11 or Wayland session; macOS and Windows always have one.
func (v *Viewer) Available() bool {
	switch v.goos {
	case "darwin", "windows":
		return true
	default:
		return v.getenv("DISPLAY") != "" || v.getenv("WAYLAND_DISPLAY") != ""
	}
}

// Command returns the program and arguments that open path.
func (v *Viewer) Command(path string) (string, []string) {
	switch v.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open shows the image at path without waiting for the viewer to exit.
// It returns ErrHeadless when there is no display.
func (v *Viewer) Open(ctx context.Context, path string) error {
	if !v.Available() {
		return ErrHeadless
	}
	name, args := v.Command(path)
	return v.start(ctx, name, args...)
}

func startDetached(_ context.Context, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...) // #nosec G204 -- fixed viewer binaries
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
