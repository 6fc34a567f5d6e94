package description

import "testing"

func TestDraftFields(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		want    Fields
		wantErr bool
	}{
		{
			name:  "general",
			draft: Draft{Tab: TabGeneral, Tag: "Lunch", Text: "Sandwich", From: "ignored"},
			want:  GeneralFields{Tag: "Lunch", Text: "Sandwich"},
		},
		{
			name:  "travel defaults to one way",
			draft: Draft{Tab: TabTravel, Tag: "Taxi", From: "A", To: "B"},
			want:  TravelFields{Tag: "Taxi", From: "A", To: "B", Direction: OneWay},
		},
		{
			name:  "travel round trip by name",
			draft: Draft{Tab: TabTravel, Tag: "Flight", From: "A", To: "B", Direction: "round-trip"},
			want:  TravelFields{Tag: "Flight", From: "A", To: "B", Direction: RoundTrip},
		},
		{
			name:    "travel unknown direction",
			draft:   Draft{Tab: TabTravel, Direction: "sideways"},
			wantErr: true,
		},
		{
			name:  "bus",
			draft: Draft{Tab: TabBus, Tag: "Bus", Route: "307", From: "A", To: "B"},
			want:  BusFields{Tag: "Bus", Route: "307", From: "A", To: "B"},
		},
		{
			name:  "recurring keeps only the key",
			draft: Draft{Tab: TabRecurring, Key: "rent", Text: "ignored"},
			want:  RecurringFields{Key: "rent"},
		},
		{
			name:    "unknown tab",
			draft:   Draft{Tab: Tab(9)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.draft.Fields()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fields() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Fields() = %#v, expected %#v", got, tt.want)
			}
		})
	}
}

func TestEditorFill(t *testing.T) {
	e := newTestEditor(t)
	e.SetDate(march)

	if err := e.Fill(Draft{Tab: TabTravel, Tag: "Taxi", From: "Station", To: "Office"}); err != nil {
		t.Fatalf("Fill(travel) error = %v", err)
	}
	if got, want := e.Description(), "Taxi—Station→Office"; got != want {
		t.Errorf("Description() = %q, expected %q", got, want)
	}
	if account, ok := e.SelectedAccount(); !ok || account != travelAccount {
		t.Errorf("SelectedAccount() = %v, %v, expected %v", account, ok, travelAccount)
	}

	if err := e.Fill(Draft{Tab: TabRecurring, Key: "rent"}); err != nil {
		t.Fatalf("Fill(recurring) error = %v", err)
	}
	if got, want := e.Description(), "Rent for March"; got != want {
		t.Errorf("Description() = %q, expected %q", got, want)
	}

	if err := e.Fill(Draft{Tab: TabRecurring, Key: "missing"}); err == nil {
		t.Error("Fill() with an unknown recurring key should fail")
	}
}
