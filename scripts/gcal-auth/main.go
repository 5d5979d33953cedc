// Command gcal-auth authorizes Google Calendar access once and saves the
// OAuth token the API server loads on startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -token token.json
//
// Open the printed URL, sign in, then paste the authorization code back here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"univio/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("LANGKAH 1: Buka URL berikut di browser dan masuk dengan akun Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("LANGKAH 2: Tempel kode otorisasi dari browser di sini lalu tekan Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", *tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token tersimpan di: %s\n", *tokenPath)
	fmt.Println("Set google_calendar.token_path ke file ini lalu jalankan ulang server.")
}
