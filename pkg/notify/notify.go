// Package notify delivers desktop notifications to the user.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// The notification texts are fixed. battnag always nags with the same words.
const (
	lowTitle  = "Battery Low"
	highTitle = "Battery High"

	lowBodyFormat  = "Battery is at %d%%. Please charge it."
	highBodyFormat = "Battery is at %d%%. Consider unplugging."
)

// LowBattery returns the notification asking the user to plug in.
func LowBattery(percent int) (title, body string) {
	return lowTitle, fmt.Sprintf(lowBodyFormat, percent)
}

// HighBattery returns the notification asking the user to unplug.
func HighBattery(percent int) (title, body string) {
	return highTitle, fmt.Sprintf(highBodyFormat, percent)
}

// Notifier delivers one desktop notification. Delivery is fire-and-forget:
// implementations must not retry, and callers only log failures.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the OS notification center.
type Desktop struct{}

// NewDesktop returns a Notifier backed by the OS notification center.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a system notification. Alert is used over Notify so the
// notification comes with a sound; a battery about to die should be hard
// to miss.
func (*Desktop) Notify(title, body string) error {
	return beeep.Alert(title, body, "")
}
