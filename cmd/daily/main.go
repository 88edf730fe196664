// Command daily runs the pipeline once: resolve the current sekki and kō
// from the Sun's apparent longitude, print the diagnostics, and post the
// message to Slack if a webhook is configured. Meant to be triggered by an
// external scheduler once per day.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/carrotRakko/koyomi-bot/pkg/ephemeris"
	"github.com/carrotRakko/koyomi-bot/pkg/koyomi"
	"github.com/carrotRakko/koyomi-bot/pkg/message"
	"github.com/carrotRakko/koyomi-bot/pkg/slack"
	"github.com/carrotRakko/koyomi-bot/pkg/suntimes"
)

const (
	iconURL = "https://raw.githubusercontent.com/carrotRakko/koyomi-bot/main/assets/icon.png"
	botName = "暦ぼっと"
)

type Config struct {
	// WebhookURL is optional; when empty, delivery is skipped.
	WebhookURL string `envconfig:"SLACK_WEBHOOK_URL"`
	Label      string `default:"dev-daily"`
}

func main() {
	_ = godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	// The reference deployment posts on Japan time regardless of host zone.
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Now().In(jst)

	table, err := koyomi.Load()
	if err != nil {
		log.Fatalf("Failed to load sekki table: %v", err)
	}

	longitude, err := ephemeris.Meeus{}.LongitudeAt(now)
	if err != nil {
		log.Fatalf("Failed to compute solar longitude: %v", err)
	}

	pos, err := table.Resolve(longitude)
	if err != nil {
		log.Fatalf("Failed to resolve position: %v", err)
	}

	fmt.Printf("日時: %s\n", now.Format(time.RFC3339))
	fmt.Printf("太陽黄経: %.2f°\n", longitude)
	fmt.Printf("節気: %s（%s）\n", pos.Sekki.Name, pos.Sekki.Reading)
	fmt.Printf("候: %s（%s）\n", pos.Ko.Name, pos.Ko.Reading)
	fmt.Printf("絵文字: %s\n", pos.Ko.Emoji)

	rise, set := suntimes.Daylight(now, suntimes.Tokyo)
	msg := message.Format(now, pos, env.Label) + "\n" + message.Daylight(rise, set)
	fmt.Printf("\n投稿メッセージ:\n%s\n", msg)

	if env.WebhookURL == "" {
		fmt.Println("\nSLACK_WEBHOOK_URL が設定されていないため、投稿をスキップ")
		return
	}

	hook := slack.New(env.WebhookURL)
	hook.Username = botName
	hook.IconURL = iconURL

	res := hook.Post(msg)
	if res.Delivered {
		fmt.Println("\nSlack 投稿: 成功")
	} else {
		// Best effort: a failed post is logged, not fatal.
		log.Printf("Slack 投稿: 失敗 (%s)", res)
	}
}
