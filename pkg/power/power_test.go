package power

import (
	"testing"

	"github.com/distatus/battery"
)

func TestChargePercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		full    float64
		want    int
	}{
		{name: "half", current: 2500, full: 5000, want: 50},
		{name: "empty", current: 0, full: 5000, want: 0},
		{name: "full", current: 5000, full: 5000, want: 100},
		{name: "rounds up", current: 199, full: 1000, want: 20},
		{name: "rounds down", current: 194, full: 1000, want: 19},
		{name: "overreport clamped to 100", current: 5150, full: 5000, want: 100},
		{name: "negative clamped to 0", current: -10, full: 5000, want: 0},
		{name: "zero full capacity", current: 2500, full: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chargePercent(tt.current, tt.full); got != tt.want {
				t.Errorf("chargePercent(%v, %v) = %d, want %d", tt.current, tt.full, got, tt.want)
			}
		})
	}
}

func TestOnACPower(t *testing.T) {
	tests := []struct {
		state battery.State
		want  bool
	}{
		{battery.Charging, true},
		{battery.Full, true},
		{battery.Discharging, false},
		{battery.Empty, false},
		{battery.Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := onACPower(tt.state); got != tt.want {
				t.Errorf("onACPower(%s) = %t, want %t", tt.state, got, tt.want)
			}
		})
	}
}

func TestFromBattery(t *testing.T) {
	bat := &battery.Battery{
		State:   battery.Discharging,
		Current: 950,
		Full:    5000,
	}
	got := fromBattery(bat)
	if got.Percent != 19 {
		t.Errorf("Percent = %d, want 19", got.Percent)
	}
	if got.Charging {
		t.Errorf("Charging = true, want false")
	}
	if got.State != "Discharging" {
		t.Errorf("State = %q, want %q", got.State, "Discharging")
	}
}
