package validate

import (
	"testing"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
)

func TestValidateDatasetEmpty(t *testing.T) {
	report := NewAt(testYear).ValidateDataset(nil)

	if report.TotalEvents != 0 {
		t.Errorf("expected total_events 0, got %d", report.TotalEvents)
	}
	if report.Stats.Error == "" {
		t.Error("expected an error marker for an empty dataset")
	}
	if report.Stats.StateExtractionRate != 0 || report.Stats.DistanceExtractionRate != 0 {
		t.Error("rates must not be computed for an empty dataset")
	}
}

func TestValidateDataset(t *testing.T) {
	events := []*event.Event{
		event.New("Kota Belud Half Marathon", "Kota Belud, Sabah", "Sabah", "21km",
			"2026-11-08", "https://example.com/a"),
		event.New("Penang HM 2026", "Georgetown, Penang", "Penang", "21km",
			"2026-10-19", "https://example.com/b"),
		event.New("Putrajaya Night 5K", "Putrajaya", "", "5km",
			"2026-10-12", "https://example.com/c"),
		event.New("Borneo Ultra", "Kiulu, Sabah", "Sabah", "50km+",
			"2027-03-02", ""),
	}

	report := NewAt(testYear).ValidateDataset(events)

	if report.TotalEvents != 4 {
		t.Fatalf("expected 4 total events, got %d", report.TotalEvents)
	}
	if report.Stats.WithStates != 3 {
		t.Errorf("expected 3 events with states, got %d", report.Stats.WithStates)
	}
	if report.Stats.StateExtractionRate != 75 {
		t.Errorf("expected state extraction rate 75, got %v", report.Stats.StateExtractionRate)
	}
	if report.Stats.WithURLs != 3 {
		t.Errorf("expected 3 events with URLs, got %d", report.Stats.WithURLs)
	}
	if report.Stats.DateRange != "2026-10-12 to 2027-03-02" {
		t.Errorf("unexpected date range: %s", report.Stats.DateRange)
	}
	if report.Stats.MonthsCovered != 3 {
		t.Errorf("expected 3 distinct months, got %d", report.Stats.MonthsCovered)
	}

	// Borneo Ultra has no URL, so it is the only invalid record
	if report.ValidEvents != 3 || report.InvalidEvents != 1 {
		t.Errorf("expected 3 valid / 1 invalid, got %d / %d",
			report.ValidEvents, report.InvalidEvents)
	}

	if report.Duplicates != 0 {
		t.Errorf("expected no duplicates, got %d", report.Duplicates)
	}

	// States: Sabah appears twice, Penang once
	states := report.Distributions.States
	if len(states) != 2 || states[0].Value != "Sabah" || states[0].Count != 2 {
		t.Errorf("unexpected state distribution: %+v", states)
	}
}

func TestValidateDatasetDuplicates(t *testing.T) {
	base := []*event.Event{
		event.New("Kota Belud Half Marathon", "Kota Belud, Sabah", "Sabah", "21km",
			"2026-11-08", "https://example.com/a"),
		event.New("Penang HM 2026", "Georgetown, Penang", "Penang", "21km",
			"2026-10-19", "https://example.com/b"),
	}

	before := NewAt(testYear).ValidateDataset(base)

	// Same (name, date), every other field different: still one duplicate key
	dup := event.New("Kota Belud Half Marathon", "Elsewhere", "", "",
		"2026-11-08", "https://example.com/other")
	after := NewAt(testYear).ValidateDataset(append(base, dup))

	if after.Duplicates != before.Duplicates+1 {
		t.Errorf("expected duplicates to increase by 1, got %d -> %d",
			before.Duplicates, after.Duplicates)
	}

	// A third copy of the same key still counts one duplicated key
	again := NewAt(testYear).ValidateDataset(append(base, dup, dup))
	if again.Duplicates != after.Duplicates {
		t.Errorf("duplicates counts distinct keys, not rows: got %d", again.Duplicates)
	}
}

func TestDistributionOrdering(t *testing.T) {
	events := []*event.Event{
		event.New("Race A 5K", "X, Johor", "Johor", "5km", "2026-01-01", "https://x/a"),
		event.New("Race B 10K", "X, Kedah", "Kedah", "10km", "2026-01-02", "https://x/b"),
		event.New("Race C 10K", "X, Kedah", "Kedah", "10km", "2026-01-03", "https://x/c"),
		event.New("Race D 5K", "X, Perak", "Perak", "5km", "2026-01-04", "https://x/d"),
	}

	report := NewAt(testYear).ValidateDataset(events)

	distances := report.Distributions.Distances
	if len(distances) != 2 {
		t.Fatalf("expected 2 distance buckets, got %d", len(distances))
	}
	// 5km and 10km both count 2; 5km was encountered first and keeps its slot
	if distances[0].Value != "5km" || distances[1].Value != "10km" {
		t.Errorf("ties must preserve first-encountered order, got %+v", distances)
	}

	states := report.Distributions.States
	if states[0].Value != "Kedah" || states[0].Count != 2 {
		t.Errorf("expected Kedah first with count 2, got %+v", states)
	}
}
