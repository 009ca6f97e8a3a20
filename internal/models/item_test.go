package models

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

func TestFormatTimestamp(t *testing.T) {
	t.Run("truncates sub-second precision", func(t *testing.T) {
		ts := time.Date(2024, 1, 1, 0, 0, 0, 999_999_999, time.UTC)
		if got := FormatTimestamp(ts); got != "2024-01-01T00:00:00Z" {
			t.Fatalf("expected 2024-01-01T00:00:00Z, got %s", got)
		}
	})

	t.Run("converts to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*60*60)
		ts := time.Date(2024, 3, 10, 12, 30, 15, 0, loc)
		if got := FormatTimestamp(ts); got != "2024-03-10T07:30:15Z" {
			t.Fatalf("expected 2024-03-10T07:30:15Z, got %s", got)
		}
	})
}

func TestItemMarshalJSON(t *testing.T) {
	item := Item{
		ID:         7,
		Title:      "A",
		CategoryID: 1,
		CreatedAt:  time.Date(2024, 1, 1, 10, 0, 0, 123456, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(ItemEnvelope{Item: item})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"item":{"id":7,"title":"A","categoryId":1,"createdAt":"2024-01-01T10:00:00Z","updatedAt":"2024-01-02T11:00:00Z"}}`
	if string(data) != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", data, want)
	}

	var decoded map[string]map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"createdAt", "updatedAt"} {
		s, _ := decoded["item"][key].(string)
		if !timestampPattern.MatchString(s) {
			t.Fatalf("%s %q does not match timestamp pattern", key, s)
		}
	}
}

func TestItemsEnvelopeDoesNotRewrap(t *testing.T) {
	data, err := json.Marshal(ItemsEnvelope{Items: []Item{{ID: 1, Title: "x"}}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"item":`) {
		t.Fatalf("list elements must not be wrapped: %s", data)
	}
}

func TestItemInputValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		createErr bool
		updateErr bool
	}{
		{name: "complete", body: `{"item":{"title":"A","categoryId":1}}`},
		{name: "title only", body: `{"item":{"title":"B"}}`, createErr: true},
		{name: "empty title is present", body: `{"item":{"title":"","categoryId":0}}`},
		{name: "category only", body: `{"item":{"categoryId":3}}`, createErr: true, updateErr: true},
		{name: "no envelope", body: `{"title":"A","categoryId":1}`, createErr: true, updateErr: true},
		{name: "empty object", body: `{}`, createErr: true, updateErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ItemInput
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			err := in.ValidateCreate()
			if tt.createErr != (err != nil) {
				t.Fatalf("ValidateCreate: expected error=%v, got %v", tt.createErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}

			err = in.ValidateUpdate()
			if tt.updateErr != (err != nil) {
				t.Fatalf("ValidateUpdate: expected error=%v, got %v", tt.updateErr, err)
			}
		})
	}
}
