// Package power reads the battery state from the OS.
package power

import (
	"math"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
)

// Reading is one battery sample. It is produced fresh on every check and
// never stored across checks.
type Reading struct {
	// Percent is the battery charge, clamped to [0,100].
	Percent int `json:"percent"`
	// Charging reports whether the machine is on AC power. It is surfaced
	// in logs and the API but does not gate notifications.
	Charging bool `json:"charging"`
	// State is the OS-reported state name ("Charging", "Discharging", ...),
	// carried for display only.
	State string `json:"state"`
}

// Reader returns the current battery reading. A failed read is transient;
// callers retry on their next check.
type Reader interface {
	Read() (Reading, error)
}

// SystemReader reads the battery through the OS power APIs.
type SystemReader struct{}

// NewSystemReader returns a Reader backed by the OS battery status.
func NewSystemReader() *SystemReader {
	return &SystemReader{}
}

func (*SystemReader) Read() (Reading, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return Reading{}, pkgerrors.Wrapf(err, "failed to read battery state")
	}
	if len(batteries) == 0 {
		return Reading{}, pkgerrors.New("no batteries found")
	}

	// Laptops in scope have a single battery. No need to support more.
	return fromBattery(batteries[0]), nil
}

func fromBattery(bat *battery.Battery) Reading {
	return Reading{
		Percent:  chargePercent(bat.Current, bat.Full),
		Charging: onACPower(bat.State),
		State:    bat.State.String(),
	}
}

// chargePercent converts the raw capacity figures to a whole percentage.
// Controllers occasionally report slightly more charge than the full
// capacity, so the result is clamped to [0,100].
func chargePercent(current, full float64) int {
	if full <= 0 {
		return 0
	}
	percent := int(math.Round(current / full * 100))
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}

// onACPower reports whether the state implies the charger is connected.
// A full battery only reads Full while on AC.
func onACPower(state battery.State) bool {
	return state == battery.Charging || state == battery.Full
}
