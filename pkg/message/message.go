// Package message renders the daily notification text.
package message

import (
	"fmt"
	"time"

	"github.com/carrotRakko/koyomi-bot/pkg/koyomi"
)

const dateFmt = "2006/01/02"

// Format renders the notification for a resolved calendar position. The
// label names the feed (e.g. "dev-daily") and is supplied by configuration.
// Pure; safe to call concurrently.
func Format(date time.Time, pos koyomi.Position, label string) string {
	return fmt.Sprintf("*%s %s* %s\n> %s・%s「%s」（%s）",
		date.Format(dateFmt),
		label,
		pos.Ko.Emoji,
		pos.Sekki.Name,
		pos.Phase(),
		pos.Ko.Name,
		pos.Ko.Reading)
}

// Daylight renders an extra quote line with sunrise and sunset, appended to
// the daily post when sun times are available.
func Daylight(rise, set time.Time) string {
	const clockFmt = "15:04"
	return fmt.Sprintf("> 日の出 %s ・ 日の入 %s", rise.Format(clockFmt), set.Format(clockFmt))
}
