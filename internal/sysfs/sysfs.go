// Package sysfs reads and writes backlight devices through the kernel's
// sysfs interface (/sys/class/backlight/<name>/).
package sysfs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// DefaultRoot is where the kernel exposes backlight devices.
const DefaultRoot = "/sys/class/backlight"

const (
	brightnessFile    = "brightness"
	maxBrightnessFile = "max_brightness"
)

var (
	ErrNoDevice   = errors.New("no such backlight device")
	ErrInvalidMax = errors.New("invalid max brightness")
)

// A Device is a single backlight device directory.
type Device struct {
	Name string
	Dir  string
}

// Open locates the device called name under root. It does not read any
// attribute files.
func Open(root, name string) (*Device, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return nil, fmt.Errorf("invalid device name %q", name)
	}
	dir := filepath.Join(root, name)
	fi, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q (looked in %s)", ErrNoDevice, name, root)
	}
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w %q: %s is not a directory", ErrNoDevice, name, dir)
	}
	return &Device{Name: name, Dir: dir}, nil
}

// ReadMax reads max_brightness. A value that is not a positive integer is
// reported as ErrInvalidMax.
func (d *Device) ReadMax() (int64, error) {
	path := d.path(maxBrightnessFile)
	text, err := readFile(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q is not an integer", path, ErrInvalidMax, text)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: %w: %d", path, ErrInvalidMax, n)
	}
	return n, nil
}

// ReadCurrent reads the current raw brightness. Zero is a valid reading.
func (d *Device) ReadCurrent() (int64, error) {
	path := d.path(brightnessFile)
	text, err := readFile(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing contents of %s as an integer: %q", path, text)
	}
	return n, nil
}

// CheckWritable reports whether the brightness file can be written by the
// calling process.
func (d *Device) CheckWritable() error {
	path := d.path(brightnessFile)
	if err := unix.Access(path, unix.W_OK); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}

// Write sets the raw brightness. The caller is responsible for keeping n
// within [0, max].
func (d *Device) Write(n int64) error {
	f, err := os.OpenFile(d.path(brightnessFile), os.O_TRUNC|os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.FormatInt(n, 10)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (d *Device) path(name string) string {
	return filepath.Join(d.Dir, name)
}

func readFile(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b)), nil
}
