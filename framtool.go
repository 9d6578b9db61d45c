// This file is part of framtool.
//
// framtool is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// framtool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with framtool.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/environment"
	"github.com/jetsetilly/framtool/fram"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/i2c/buspirate"
	"github.com/jetsetilly/framtool/logger"
	"github.com/jetsetilly/framtool/modalflag"
	"github.com/jetsetilly/framtool/prefs"
	"github.com/jetsetilly/framtool/sim"
	"github.com/jetsetilly/framtool/statsview"
)

// error patterns for the command line tool.
const (
	UnknownBus      = "framtool: unknown bus type (%s)"
	UnsupportedBus  = "framtool: %s bus is not supported on this platform"
	BadChipList     = "framtool: bad chip list: %v"
	NoChips         = "framtool: no chips detected"
	BadData         = "framtool: bad data: %v"
	TooManyArgs     = "framtool: too many arguments for %s mode"
	TransportStatus = "framtool: bus status: %v"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DETECT", "READ", "WRITE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DETECT":
		err = detect(md, os.Stdout)

	case "READ":
		err = read(md, os.Stdout)

	case "WRITE":
		err = write(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags shared by every mode.
type common struct {
	bus       *string
	device    *string
	prefs     *string
	log       *bool
	statsview *bool

	// SIM bus only
	chips *string
	image *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		bus:       md.AddString("bus", "SIM", "bus transport: SIM, LINUX, BUSPIRATE"),
		device:    md.AddString("device", "", "device file for the bus transport (overrides bus.device preference)"),
		prefs:     md.AddString("prefs", "", "preferences (key::value; key::value)"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		chips:     md.AddString("chips", "32", "SIM bus only: chip sizes in KB for each slot, 0 for an empty slot"),
		image:     md.AddString("image", "", "SIM bus only: load and save chip contents using files with this prefix"),
	}
}

// session is an open bus with a driver that has completed detection.
type session struct {
	drv *fram.Driver
	bus i2c.Bus

	// closing the session saves the contents of simulated chips if an image
	// has been specified
	closer func() error
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// open the bus selected on the command line and detect the chips on it. the
// command line preferences stack must have been pushed by the caller.
func (c *common) open(output io.Writer) (*session, error) {
	if *c.log {
		logger.SetEcho(output)
	}

	if *c.statsview {
		statsview.Launch(output)
	}

	env, err := environment.NewEnvironment("", nil)
	if err != nil {
		return nil, err
	}

	device := *c.device
	if device == "" {
		device = env.Prefs.BusDevice.String()
	}

	s := &session{}

	switch strings.ToUpper(*c.bus) {
	case "SIM":
		sizes, err := parseChips(*c.chips)
		if err != nil {
			return nil, err
		}

		bus := sim.NewBus(env.Prefs.Base())
		err = bus.Populate(sizes...)
		if err != nil {
			return nil, err
		}

		if *c.image != "" {
			err = loadImage(bus, *c.image)
			if err != nil {
				return nil, err
			}
			s.closer = func() error {
				return saveImage(bus, *c.image)
			}
		}

		s.bus = bus

	case "LINUX":
		bus, closer, err := openLinux(device)
		if err != nil {
			return nil, err
		}
		s.bus = bus
		s.closer = closer.Close

	case "BUSPIRATE":
		bus, err := buspirate.Open(device, env.Prefs.Baud.Get().(int))
		if err != nil {
			return nil, err
		}
		s.bus = bus
		s.closer = bus.Close

	default:
		return nil, curated.Errorf(UnknownBus, *c.bus)
	}

	s.drv = fram.NewDriver(env, s.bus)
	s.drv.Detect()

	return s, nil
}

// wait for an interrupt signal if the stats server is running.
func (c *common) wait(output io.Writer) {
	if !*c.statsview || !statsview.Available() {
		return
	}

	fmt.Fprintln(output, "press ctrl-c to end")

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	<-intChan
}

// parseChips converts a comma separated list of sizes in kilobytes.
func parseChips(list string) ([]int, error) {
	var sizes []int

	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		kb, err := strconv.Atoi(s)
		if err != nil {
			return nil, curated.Errorf(BadChipList, err)
		}

		if kb != 0 && !sim.ValidSize(kb) {
			return nil, curated.Errorf(BadChipList, curated.Errorf(sim.InvalidChipSize, kb))
		}

		sizes = append(sizes, kb)
	}

	if len(sizes) > sim.NumSlots {
		return nil, curated.Errorf(BadChipList, fmt.Sprintf("more than %d chips", sim.NumSlots))
	}

	return sizes, nil
}

func imageFilename(prefix string, slot int) string {
	return fmt.Sprintf("%s.%d", prefix, slot)
}

// loadImage into every chip on the bus. missing files are not an error
// because the image will be created when the session is closed.
func loadImage(bus *sim.Bus, prefix string) error {
	for slot, c := range bus.Chips {
		if c == nil {
			continue
		}

		fn := imageFilename(prefix, slot)
		if _, err := os.Stat(fn); err != nil {
			continue
		}

		if err := c.Load(fn); err != nil {
			return err
		}
	}
	return nil
}

// saveImage of every chip that has changed since it was loaded.
func saveImage(bus *sim.Bus, prefix string) error {
	for slot, c := range bus.Chips {
		if c == nil || c.IsSaved() {
			continue
		}

		if err := c.Save(imageFilename(prefix, slot)); err != nil {
			return err
		}
	}
	return nil
}

func detect(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	cmn := addCommon(md)
	spewDump := md.AddBool("spew", false, "dump the capacity table and chip locations")
	viz := md.AddString("memviz", "", "write a graphviz representation of the driver to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArgs, md)
	}

	prefs.PushCommandLineStack(*cmn.prefs)
	defer prefs.PopCommandLineStack()

	s, err := cmn.open(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	printTable(output, s.drv)

	if err := s.drv.Status(); err != nil {
		fmt.Fprintln(output, curated.Errorf(TransportStatus, err))
	}

	if *spewDump {
		spew.Fdump(output, s.drv.Table(), chipLocations(s.drv))
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, s.drv)
		if err := f.Close(); err != nil {
			return err
		}
	}

	cmn.wait(output)

	return nil
}

func printTable(output io.Writer, drv *fram.Driver) {
	fmt.Fprintf(output, "%s\n", drv)

	tab := drv.Table()
	for slot := range tab {
		if tab[slot] == 0 {
			continue
		}
		l, _ := chipStart(drv, slot)
		fmt.Fprintf(output, "  slot %d: %2dKB 0x%04x - 0x%04x\n", slot, tab[slot], l, l+drv.ChipSizeBytes(slot)-1)
	}

	fmt.Fprintf(output, "%d chips, %d bytes\n", drv.DeviceCount(), drv.TotalBytes())
}

// chipStart returns the flat address of the first byte of the chip in slot.
func chipStart(drv *fram.Driver, slot int) (uint32, bool) {
	if drv.ChipSizeBytes(slot) == 0 {
		return 0, false
	}

	var start uint32
	for s := 0; s < slot; s++ {
		start += drv.ChipSizeBytes(s)
	}

	return start, true
}

// chipLocations returns the location of the first byte of every detected chip.
func chipLocations(drv *fram.Driver) []fram.Location {
	var locs []fram.Location
	for slot := 0; slot < fram.NumSlots; slot++ {
		if start, ok := chipStart(drv, slot); ok {
			if l, ok := drv.Locate(start); ok {
				locs = append(locs, l)
			}
		}
	}
	return locs
}

func read(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	cmn := addCommon(md)
	addr := md.AddInt("addr", 0, "flat address of first byte")
	length := md.AddInt("len", 256, "number of bytes to read")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(TooManyArgs, md)
	}

	prefs.PushCommandLineStack(*cmn.prefs)
	defer prefs.PopCommandLineStack()

	s, err := cmn.open(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if s.drv.DeviceCount() == 0 {
		return curated.Errorf(NoChips)
	}

	err = dump(output, s.drv, int64(*addr), *length)
	if err != nil {
		return err
	}

	cmn.wait(output)

	return nil
}

// dump length bytes from the flat address as a hex listing. the listing is
// shortened if the end of the flat address space is reached.
func dump(output io.Writer, drv *fram.Driver, addr int64, length int) error {
	if length <= 0 {
		return nil
	}

	data := make([]byte, length)
	n, err := drv.ReadAt(data, addr)
	if err != nil && err != io.EOF {
		return err
	}

	d := hex.Dumper(output)
	_, _ = d.Write(data[:n])
	return d.Close()
}

func write(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	cmn := addCommon(md)
	addr := md.AddInt("addr", 0, "flat address of first byte")
	file := md.AddString("file", "", "write contents of file rather than the hex argument")
	verify := md.AddBool("verify", true, "read back and compare written data")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var data []byte

	if *file != "" {
		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf(TooManyArgs, md)
		}
		data, err = os.ReadFile(*file)
		if err != nil {
			return curated.Errorf(BadData, err)
		}
	} else {
		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf(BadData, "no hex data")
		case 1:
			data, err = hex.DecodeString(md.GetArg(0))
			if err != nil {
				return curated.Errorf(BadData, err)
			}
		default:
			return curated.Errorf(TooManyArgs, md)
		}
	}

	prefs.PushCommandLineStack(*cmn.prefs)
	defer prefs.PopCommandLineStack()

	s, err := cmn.open(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if s.drv.DeviceCount() == 0 {
		return curated.Errorf(NoChips)
	}

	n, err := s.drv.WriteAt(data, int64(*addr))
	if err != nil {
		return err
	}

	if *verify {
		check := make([]byte, n)
		if _, err := s.drv.ReadAt(check, int64(*addr)); err != nil {
			return err
		}
		for i := range check {
			if check[i] != data[i] {
				return curated.Errorf(BadData, fmt.Sprintf("verify failed at 0x%04x", *addr+i))
			}
		}
	}

	fmt.Fprintf(output, "%d bytes written at 0x%04x\n", n, *addr)

	cmn.wait(output)

	return nil
}
