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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/framtool/curated"
	"github.com/jetsetilly/framtool/i2c"
	"github.com/jetsetilly/framtool/prefs"
)

// InvalidBaseAddress is returned when the base address preference is set to a
// value that does not place all eight peripheral addresses in the FRAM range.
const InvalidBaseAddress = "preferences: invalid base address (%#02x)"

// The range of base addresses. Eight consecutive addresses from the base must
// fall between 0x50 and 0x77.
const (
	MinBaseAddress = 0x50
	MaxBaseAddress = 0x70
)

// List of default values.
const (
	DefaultBaseAddress = 0x50
	DefaultBusDevice   = "/dev/i2c-1"
	DefaultBaud        = 115200
)

// Preferences for the fram driver and the bus it is attached to.
type Preferences struct {
	// whether the driver adds entries to the log
	Logging prefs.Bool

	// the peripheral address of the first of the eight chip slots
	BaseAddress prefs.Int

	// device file for the bus transport. the meaning depends on the type
	// of transport. for the linux transport it is the i2c-dev device, for
	// the bus pirate it is the serial port
	BusDevice prefs.String

	// baud rate for serial bus transports
	Baud prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("fram.logging::%v; fram.baseaddress::%#02x; bus.device::%s; bus.baud::%d",
		p.Logging.String(), p.BaseAddress.Get().(int), p.BusDevice.String(), p.Baud.Get().(int))
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Default values are set and then any value on the top of the command line
// preferences stack is applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.BaseAddress.SetHookPre(func(v prefs.Value) error {
		a := v.(int)
		if a < MinBaseAddress || a > MaxBaseAddress {
			return curated.Errorf(InvalidBaseAddress, a)
		}
		return nil
	})

	p.SetDefaults()

	cl := []struct {
		key  string
		pref interface{ Set(prefs.Value) error }
	}{
		{"fram.logging", &p.Logging},
		{"fram.baseaddress", &p.BaseAddress},
		{"bus.device", &p.BusDevice},
		{"bus.baud", &p.Baud},
	}

	for _, c := range cl {
		if ok, v := prefs.GetCommandLinePref(c.key); ok {
			if err := c.pref.Set(v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Logging.Set(true)
	_ = p.BaseAddress.Set(DefaultBaseAddress)
	_ = p.BusDevice.Set(DefaultBusDevice)
	_ = p.Baud.Set(DefaultBaud)
}

// Base returns the base address preference as an i2c address.
func (p *Preferences) Base() i2c.Addr {
	return i2c.Addr(p.BaseAddress.Get().(int))
}
