package replacements

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Keys of the replacements every instantiation gets for free
const (
	KeyDate     = "__DATE__"
	KeyDateTime = "__DATETIME__"
	KeyTime     = "__TIME__"
	KeyYear     = "__YEAR__"
	KeyUUID     = "__UUID__"
)

// Common returns the date and time of now in UTC plus a fresh random UUID
func Common(now time.Time) *Map {
	now = now.UTC()
	return New(
		KeyDate, now.Format("2006-01-02"),
		KeyDateTime, now.Format("2006-01-02 15:04:05.000000-07:00"),
		KeyTime, now.Format("15:04:05")+" UTC+00:00",
		KeyYear, strconv.Itoa(now.Year()),
		KeyUUID, uuid.NewString(),
	)
}
