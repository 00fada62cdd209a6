package notify

import "testing"

func TestLowBattery(t *testing.T) {
	title, body := LowBattery(19)
	if title != "Battery Low" {
		t.Errorf("title = %q, want %q", title, "Battery Low")
	}
	if body != "Battery is at 19%. Please charge it." {
		t.Errorf("body = %q, want %q", body, "Battery is at 19%. Please charge it.")
	}
}

func TestHighBattery(t *testing.T) {
	title, body := HighBattery(85)
	if title != "Battery High" {
		t.Errorf("title = %q, want %q", title, "Battery High")
	}
	if body != "Battery is at 85%. Consider unplugging." {
		t.Errorf("body = %q, want %q", body, "Battery is at 85%. Consider unplugging.")
	}
}
