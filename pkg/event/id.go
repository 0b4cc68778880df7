package event

import (
	"math/rand"
	"strconv"
	"time"
)

// Identifier format is part of the persisted schema and of the notification
// identifier namespace (reminder_<eventId>_<reminderId>), so both generators
// keep the historical <prefix>_<unix-millis>_<short-random> shape.

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates an event identifier, e.g. "evt_1735689600000_k3j9q".
func NewID() string {
	return newID("evt")
}

// NewReminderID generates a reminder identifier, e.g. "rem_1735689600000_x81aa".
func NewReminderID() string {
	return newID("rem")
}

func newID(prefix string) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
