package message

import (
	"strings"
	"testing"
	"time"

	"github.com/carrotRakko/koyomi-bot/pkg/koyomi"
)

func TestFormatContainsAllPieces(t *testing.T) {
	sekki := &koyomi.Sekki{
		Name:      "立春",
		Reading:   "りっしゅん",
		Longitude: 315,
		Ko: []koyomi.Ko{
			{Name: "東風解凍", Reading: "はるかぜこおりをとく", Emoji: "💨"},
			{Name: "黄鶯睍睆", Reading: "うぐいすなく", Emoji: "🐦"},
			{Name: "魚上氷", Reading: "うおこおりをいずる", Emoji: "🐟"},
		},
	}
	date := time.Date(2024, time.February, 4, 9, 0, 0, 0, time.UTC)

	table := []struct {
		koIndex int
		phase   string
	}{
		{0, "初候"},
		{1, "次候"},
		{2, "末候"},
	}

	for _, tc := range table {
		pos := koyomi.Position{Sekki: sekki, Ko: &sekki.Ko[tc.koIndex], KoIndex: tc.koIndex}
		got := Format(date, pos, "dev-daily")

		for _, want := range []string{
			"2024/02/04",
			"dev-daily",
			sekki.Name,
			tc.phase,
			pos.Ko.Name,
			pos.Ko.Reading,
			pos.Ko.Emoji,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("Format() = %q, missing %q", got, want)
			}
		}
	}
}

func TestFormatLayout(t *testing.T) {
	sekki := &koyomi.Sekki{
		Name: "夏至",
		Ko: []koyomi.Ko{
			{Name: "乃東枯", Reading: "なつかれくさかるる", Emoji: "🥀"},
			{}, {},
		},
	}
	pos := koyomi.Position{Sekki: sekki, Ko: &sekki.Ko[0], KoIndex: 0}
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)

	want := "*2024/06/21 dev-daily* 🥀\n> 夏至・初候「乃東枯」（なつかれくさかるる）"
	if got := Format(date, pos, "dev-daily"); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDaylight(t *testing.T) {
	rise := time.Date(2024, time.June, 21, 4, 25, 0, 0, time.UTC)
	set := time.Date(2024, time.June, 21, 19, 0, 0, 0, time.UTC)
	want := "> 日の出 04:25 ・ 日の入 19:00"
	if got := Daylight(rise, set); got != want {
		t.Errorf("Daylight() = %q, want %q", got, want)
	}
}
