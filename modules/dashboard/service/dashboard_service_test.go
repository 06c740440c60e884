package service

import (
	"encoding/csv"
	"regexp"
	"strings"
	"testing"
	"time"

	eventEntity "event-portal/modules/event/entity"
	registrationEntity "event-portal/modules/registration/entity"
)

func TestRegistrantsCSV(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	rows := []registrationEntity.Registrant{
		{Name: "Ann", Email: "a@x.com", Phone: "1234567890"},
		{Name: "Smith, Jo", Email: "j@x.com", Phone: "0987654321"},
	}
	rows[0].ID, rows[0].CreatedAt = 1, at
	rows[1].ID, rows[1].CreatedAt = 2, at

	content, err := RegistrantsCSV(rows)
	if err != nil {
		t.Fatalf("RegistrantsCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2", len(records))
	}
	if records[2][1] != "Smith, Jo" || records[1][4] != "2026-03-04T05:06:07Z" {
		t.Errorf("records = %v", records)
	}
}

func TestExportFilename(t *testing.T) {
	event := &eventEntity.Event{Name: "Go Meetup: Hà Nội!"}
	event.ID = 5

	name := ExportFilename(event)
	if !regexp.MustCompile(`^go-meetup-ha-noi-[0-9A-Za-z]{10}\.csv$`).MatchString(name) {
		t.Errorf("filename = %q", name)
	}
	if ExportFilename(event) == name {
		t.Error("filenames are not unique")
	}

	blank := &eventEntity.Event{Name: "!!!"}
	blank.ID = 9
	if got := ExportFilename(blank); !strings.HasPrefix(got, "event-9-") {
		t.Errorf("fallback filename = %q", got)
	}
}
