// Package handlers wires the HTTP API. The interesting work happens in
// pkg/koyomi; these handlers resolve "now" once per day and serve the
// cached result.
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/carrotRakko/koyomi-bot/pkg/cache"
	"github.com/carrotRakko/koyomi-bot/pkg/koyomi"
	"github.com/carrotRakko/koyomi-bot/pkg/message"
	"github.com/carrotRakko/koyomi-bot/pkg/suntimes"
	"github.com/carrotRakko/koyomi-bot/pkg/timetricks"

	"github.com/gorilla/mux"
)

// cache for slightly less than one day so daily clients don't see stale data
const cacheTTL = 23 * time.Hour

// LongitudeProvider computes the Sun's apparent ecliptic longitude in
// degrees at a given time.
type LongitudeProvider interface {
	LongitudeAt(t time.Time) (float64, error)
}

// Env carries the handler dependencies.
type Env struct {
	Table *koyomi.Table
	Sun   LongitudeProvider
	Place suntimes.Place
	Label string

	// Now returns the current time. Defaults to time.Now; tests override it.
	Now func() time.Time
}

// Response is the /api/v1/koyomi payload.
type Response struct {
	Date      string  `json:"date"`
	Longitude float64 `json:"longitude"`
	Sekki     struct {
		Name    string `json:"name"`
		Reading string `json:"reading"`
	} `json:"sekki"`
	Ko      koyomi.Ko `json:"ko"`
	KoIndex int       `json:"ko_index"`
	Phase   string    `json:"phase"`
	Sunrise string    `json:"sunrise"`
	Sunset  string    `json:"sunset"`
	Message string    `json:"message"`
}

// Register attaches the API routes to r.
func Register(r *mux.Router, env Env) {
	if env.Now == nil {
		env.Now = time.Now
	}
	r.Handle("/", makeIndexHandler())
	r.Handle("/api/v1/koyomi", makeServeKoyomi(env))
}

func makeIndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)
		fmt.Fprintf(w, "koyomi-bot\n")
	})
}

func makeServeKoyomi(env Env) http.Handler {
	dayCache := cache.NewTimed(cacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		now := env.Now().In(env.Place.Location)
		outputFormat := r.FormValue("o")
		key := fmt.Sprintf("%s %s", timetricks.UniqueDay(now), outputFormat)

		contentType := "application/json"
		if outputFormat == "text" {
			contentType = "text/plain; charset=utf-8"
		}

		if cached, ok := dayCache.Get(key); ok {
			w.Header().Add("Content-Type", contentType)
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		resp, err := resolveNow(env, now)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Failed to resolve: %+v", err)
			log.Printf("Failed to resolve: %+v", err)
			return
		}

		// Duplicate the response onto a buffer for the cache.
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if outputFormat == "text" {
			fmt.Fprintln(mw, resp.Message)
		} else {
			if err := json.NewEncoder(mw).Encode(resp); err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
				return
			}
		}

		dayCache.Set(key, toCache.Bytes())
	})
}

func resolveNow(env Env, now time.Time) (Response, error) {
	longitude, err := env.Sun.LongitudeAt(now)
	if err != nil {
		return Response{}, fmt.Errorf("solar longitude: %w", err)
	}

	pos, err := env.Table.Resolve(longitude)
	if err != nil {
		return Response{}, err
	}

	rise, set := suntimes.Daylight(now, env.Place)

	var resp Response
	resp.Date = now.Format("2006/01/02")
	resp.Longitude = longitude
	resp.Sekki.Name = pos.Sekki.Name
	resp.Sekki.Reading = pos.Sekki.Reading
	resp.Ko = *pos.Ko
	resp.KoIndex = pos.KoIndex
	resp.Phase = pos.Phase()
	resp.Sunrise = rise.Format("15:04")
	resp.Sunset = set.Format("15:04")
	resp.Message = message.Format(now, pos, env.Label)
	return resp, nil
}
