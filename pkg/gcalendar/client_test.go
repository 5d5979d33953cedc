package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"univio/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		if err := os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad-token.json")
		if err := os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), filepath.Join(dir, "missing.json"))
		if err == nil || !strings.Contains(err.Error(), "gcal-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("from file", func(t *testing.T) {
		credsPath := filepath.Join(dir, "creds.json")
		if err := os.WriteFile(credsPath, []byte(`{"broken":true}`), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath, ""); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:    "basis data",
		Location:   "Ruang 301",
		StartTime:  start,
		EndTime:    start.Add(100 * time.Minute),
		Timezone:   "Asia/Jakarta",
		Recurrence: []string{gcalendar.RecurrenceWeekly},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
	if got["location"] != "Ruang 301" {
		t.Errorf("location not sent: %v", got["location"])
	}
	rec, _ := got["recurrence"].([]any)
	if len(rec) != 1 || rec[0] != gcalendar.RecurrenceWeekly {
		t.Errorf("recurrence not sent: %v", got["recurrence"])
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/calendars/test-fail/events":
			w.WriteHeader(http.StatusInternalServerError)
		case r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet:
			if r.URL.Query().Get("q") != "Tugas" {
				t.Errorf("query not forwarded: %q", r.URL.RawQuery)
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"items": [
				{"id": "event-123", "summary": "Existing Event", "start": {"date": "2024-05-01"}, "end": {"date": "2024-05-01"}},
				{"id": "event-456", "summary": "Timed", "start": {"dateTime": "2024-05-01T08:00:00+07:00"}, "end": {"dateTime": "2024-05-01T09:40:00+07:00"}}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	now := time.Now()

	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{TimeMin: now, TimeMax: now.Add(24 * time.Hour), Query: "Tugas"})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Summary != "Existing Event" || events[0].StartTime.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("unexpected all-day event: %+v", events[0])
	}
	if events[1].EndTime.Sub(events[1].StartTime) != 100*time.Minute {
		t.Errorf("unexpected timed event: %+v", events[1])
	}

	if _, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{CalendarID: "test-fail", TimeMin: now, TimeMax: now}); err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
