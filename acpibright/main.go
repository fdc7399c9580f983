// Command acpibright reads and adjusts the brightness of a backlight device
// through /sys/class/backlight.
//
// Concurrent invocations against the same device are not coordinated; the
// last write wins.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/acpi-bright/acpibright/internal/brightness"
	"github.com/acpi-bright/acpibright/internal/sysfs"
)

func main() {
	log.SetFlags(0)
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, errHelp) {
		printHelp(os.Stdout)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

const usage = `usage: acpibright -d <device> (-r | -p | -s <value>) [-v]

Options:
  -h            Print this help message
  -d <device>   Backlight device under %s (required)
  -r            Print the current raw brightness
  -p            Print the current brightness as a percentage
  -s <value>    Set or change the brightness. <value> is an integer with an
                optional leading + or - (change relative to the current
                level) and an optional trailing %% (percent of maximum).
                Examples: 120, 40%%, +10, -5%%
  -v            Log the change being made
`

func printHelp(w io.Writer) {
	fmt.Fprintf(w, usage, sysfs.DefaultRoot)
}

type mode int

const (
	modeSet mode = iota + 1
	modeRaw
	modePercent
)

type config struct {
	device  string
	root    string
	mode    mode
	req     brightness.Request // for modeSet
	verbose bool
}

var (
	errHelp  = errors.New("help requested")
	errUsage = errors.New("usage error")
)

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s (see acpibright -h)", errUsage, fmt.Sprintf(format, args...))
}

func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("acpibright", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		help    = fs.Bool("h", false, "")
		device  = fs.String("d", "", "")
		raw     = fs.Bool("r", false, "")
		percent = fs.Bool("p", false, "")
		verbose = fs.Bool("v", false, "")
	)
	var set *string
	fs.Func("s", "", func(s string) error {
		set = &s
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("%w: %s", errUsage, err)
	}
	if *help {
		return config{}, errHelp
	}
	if fs.NArg() > 0 {
		return config{}, usageErrorf("unexpected arguments: %q", fs.Args())
	}
	if *device == "" {
		return config{}, usageErrorf("no device specified (use -d)")
	}

	cfg := config{
		device:  *device,
		root:    sysfs.DefaultRoot,
		verbose: *verbose,
	}
	n := 0
	if *raw {
		cfg.mode = modeRaw
		n++
	}
	if *percent {
		cfg.mode = modePercent
		n++
	}
	if set != nil {
		cfg.mode = modeSet
		n++
	}
	switch n {
	case 0:
		return config{}, usageErrorf("one of -r, -p, or -s is required")
	case 1:
	default:
		return config{}, usageErrorf("-r, -p, and -s cannot be combined")
	}
	if cfg.mode == modeSet {
		req, err := brightness.Parse(*set)
		if err != nil {
			return config{}, err
		}
		cfg.req = req
	}
	return cfg, nil
}

func run(cfg config, stdout io.Writer) error {
	dev, err := sysfs.Open(cfg.root, cfg.device)
	if err != nil {
		return err
	}
	if cfg.mode == modeSet {
		if err := dev.CheckWritable(); err != nil {
			return err
		}
	}
	max, err := dev.ReadMax()
	if err != nil {
		return err
	}

	switch cfg.mode {
	case modeRaw:
		cur, err := dev.ReadCurrent()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, cur)
		return nil
	case modePercent:
		cur, err := dev.ReadCurrent()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d%%\n", brightness.RawToPercent(cur, max))
		return nil
	}

	var cur int64
	if cfg.req.Relative || cfg.verbose {
		if cur, err = dev.ReadCurrent(); err != nil {
			return err
		}
	}
	newVal := brightness.Compute(cfg.req, cur, max)
	if cfg.verbose {
		log.Printf("Changing %d -> %d (max %d, request %s)", cur, newVal, max, cfg.req)
	}
	return dev.Write(newVal)
}
