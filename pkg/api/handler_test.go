package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/catalog"
	"github.com/shunichi-ikebuchi/description-editor/pkg/db"
	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
)

const testCatalog = `
accounts:
  - code: "6254"
    title: Travel Expense
  - code: "6261"
    title: Utilities
tags:
  general:
    - name: Lunch
  travel:
    - name: Taxi
      accounts: ["6254"]
  bus:
    - name: Bus
      accounts: ["6254"]
recurring:
  - key: water
    name: Water bill
    description: "Water {last_bimonthly_name}"
    accounts: ["6261"]
`

func newTestServer(t *testing.T, withHistory bool) (*httptest.Server, *db.History) {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catalog.Parse() error = %v", err)
	}

	var history *db.History
	if withHistory {
		conn, err := db.Open(db.MemoryPath)
		if err != nil {
			t.Fatalf("db.Open() error = %v", err)
		}
		t.Cleanup(func() { conn.Close() })
		history = db.NewHistory(conn)
	}

	h := NewHandler(cat, history, time.UTC)
	h.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }

	server := httptest.NewServer(NewRouter(h, 5*time.Second))
	t.Cleanup(server.Close)
	return server, history
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s error = %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

type decodeResult struct {
	Tab         string                 `json:"tab"`
	Tag         string                 `json:"tag"`
	Fields      map[string]string      `json:"fields"`
	Annotation  description.Annotation `json:"annotation"`
	Suggestions []description.Account  `json:"suggestions"`
	Account     *description.Account   `json:"account"`
}

func TestDecode(t *testing.T) {
	server, _ := newTestServer(t, false)

	tests := []struct {
		name        string
		request     DecodeRequest
		wantTab     string
		wantTag     string
		wantFields  map[string]string
		wantNote    string
		wantAccount string
	}{
		{
			name:        "travel with annotation",
			request:     DecodeRequest{Description: "Taxi—Station→Office×2(late)", Date: "2024-03-15"},
			wantTab:     "travel",
			wantTag:     "Taxi",
			wantFields:  map[string]string{"tag": "Taxi", "from": "Station", "to": "Office", "direction": "→"},
			wantNote:    "late",
			wantAccount: "6254",
		},
		{
			name:        "recurring for the reference month",
			request:     DecodeRequest{Description: "Water January-February", Date: "2024-03-15"},
			wantTab:     "recurring",
			wantTag:     "water",
			wantFields:  map[string]string{"key": "water", "text": "Water January-February"},
			wantAccount: "6261",
		},
		{
			name:       "recurring text of another month is general",
			request:    DecodeRequest{Description: "Water January-February", Date: "2024-05-15"},
			wantTab:    "general",
			wantFields: map[string]string{"tag": "", "text": "Water January-February"},
		},
		{
			name:        "date defaults to today",
			request:     DecodeRequest{Description: "Water January-February"},
			wantTab:     "recurring",
			wantTag:     "water",
			wantFields:  map[string]string{"key": "water", "text": "Water January-February"},
			wantAccount: "6261",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/1/descriptions/decode", tt.request)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
			}

			var got decodeResult
			decodeBody(t, resp, &got)

			if got.Tab != tt.wantTab || got.Tag != tt.wantTag {
				t.Errorf("tab, tag = %q, %q, expected %q, %q", got.Tab, got.Tag, tt.wantTab, tt.wantTag)
			}
			for key, want := range tt.wantFields {
				if got.Fields[key] != want {
					t.Errorf("fields[%q] = %q, expected %q", key, got.Fields[key], want)
				}
			}
			if got.Annotation.Note != tt.wantNote {
				t.Errorf("annotation note = %q, expected %q", got.Annotation.Note, tt.wantNote)
			}
			if tt.wantAccount == "" {
				if got.Account != nil {
					t.Errorf("account = %v, expected none", got.Account)
				}
			} else if got.Account == nil || got.Account.Code != tt.wantAccount {
				t.Errorf("account = %v, expected %s", got.Account, tt.wantAccount)
			}
		})
	}
}

func TestDecodeBadRequest(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp, err := http.Post(server.URL+"/api/1/descriptions/decode", "application/json", bytes.NewBufferString("{"))
	if err != nil {
		t.Fatalf("POST error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusBadRequest)
	}

	resp = postJSON(t, server.URL+"/api/1/descriptions/decode", DecodeRequest{Description: "x", Date: "15/03/2024"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusBadRequest)
	}
	var errResp ErrorResponse
	decodeBody(t, resp, &errResp)
	if errResp.Error != "invalid_parameter" {
		t.Errorf("error = %q, expected invalid_parameter", errResp.Error)
	}
}

func TestEncode(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := postJSON(t, server.URL+"/api/1/descriptions/encode", map[string]interface{}{
		"tab":        "bus",
		"tag":        "Bus",
		"route":      "307",
		"from":       "Station",
		"to":         "Office",
		"annotation": map[string]interface{}{"quantity": 2},
		"side":       "credit",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	var result description.Result
	decodeBody(t, resp, &result)
	if result.Description != "Bus—307—Station→Office×2" {
		t.Errorf("description = %q, expected %q", result.Description, "Bus—307—Station→Office×2")
	}
	if result.Side != description.SideCredit || result.Tab != description.TabBus {
		t.Errorf("side, tab = %v, %v", result.Side, result.Tab)
	}
	if result.Account == nil || result.Account.Code != "6254" {
		t.Errorf("account = %v, expected 6254", result.Account)
	}
}

func TestEncodeRecurringUsesDate(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := postJSON(t, server.URL+"/api/1/descriptions/encode", map[string]interface{}{
		"tab":  "recurring",
		"key":  "water",
		"date": "2024-01-10",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	var result description.Result
	decodeBody(t, resp, &result)
	if result.Description != "Water November-December" {
		t.Errorf("description = %q, expected %q", result.Description, "Water November-December")
	}
}

func TestEncodeValidation(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := postJSON(t, server.URL+"/api/1/descriptions/encode", map[string]interface{}{
		"tab": "bus",
		"tag": "Bus",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}

	var errResp ErrorResponse
	decodeBody(t, resp, &errResp)
	if errResp.Error != "validation_failed" {
		t.Errorf("error = %q, expected validation_failed", errResp.Error)
	}
	fields := make(map[string]bool)
	for _, fe := range errResp.Fields {
		fields[fe.Field] = true
	}
	if len(fields) != 3 || !fields["route"] || !fields["from"] || !fields["to"] {
		t.Errorf("fields = %+v, expected route, from and to", errResp.Fields)
	}
}

func TestEncodeRecord(t *testing.T) {
	server, history := newTestServer(t, true)

	resp := postJSON(t, server.URL+"/api/1/descriptions/encode", map[string]interface{}{
		"tab":          "general",
		"tag":          "Parking",
		"text":         "Airport",
		"account_code": "6254",
		"record":       true,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusCreated)
	}

	records, err := history.GetRecords(description.TabGeneral, "Parking")
	if err != nil {
		t.Fatalf("GetRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].Description != "Parking—Airport" || records[0].AccountCode != "6254" {
		t.Errorf("records = %+v", records)
	}

	// History answers for tags the catalog does not know.
	resp = get(t, server.URL+"/api/1/suggestions?tab=general&tag=Parking")
	var suggestions struct {
		Accounts []description.Account `json:"accounts"`
	}
	decodeBody(t, resp, &suggestions)
	if len(suggestions.Accounts) != 1 || suggestions.Accounts[0].Code != "6254" {
		t.Errorf("suggestions = %+v, expected 6254", suggestions.Accounts)
	}

	resp = get(t, server.URL+"/api/1/tags?tab=general")
	var tags TagsResponse
	decodeBody(t, resp, &tags)
	if len(tags.Tags) != 1 || tags.Tags[0] != "Lunch" {
		t.Errorf("tags = %v, expected [Lunch]", tags.Tags)
	}
	if len(tags.Frequent) != 1 || tags.Frequent[0].Tag != "Parking" {
		t.Errorf("frequent = %+v, expected Parking", tags.Frequent)
	}
}

func TestEncodeRecordWithoutHistory(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := postJSON(t, server.URL+"/api/1/descriptions/encode", map[string]interface{}{
		"tab":    "general",
		"text":   "Misc",
		"record": true,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusConflict)
	}
}

func TestRecurring(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := get(t, server.URL+"/api/1/recurring?date=2024-03-15")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}

	var got struct {
		Date  string          `json:"date"`
		Items []RecurringItem `json:"items"`
	}
	decodeBody(t, resp, &got)
	if got.Date != "2024-03-15" {
		t.Errorf("date = %q, expected 2024-03-15", got.Date)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items = %+v, expected 1", got.Items)
	}
	item := got.Items[0]
	if item.Key != "water" || item.Text != "Water January-February" {
		t.Errorf("item = %+v", item)
	}
	if len(item.Accounts) != 1 || item.Accounts[0].Title != "Utilities" {
		t.Errorf("item accounts = %+v", item.Accounts)
	}
}

func TestQueryParameterErrors(t *testing.T) {
	server, _ := newTestServer(t, false)

	tests := []struct {
		name string
		path string
	}{
		{"tags without tab", "/api/1/tags"},
		{"tags with unknown tab", "/api/1/tags?tab=boat"},
		{"suggestions without tag", "/api/1/suggestions?tab=travel"},
		{"suggestions with unknown tab", "/api/1/suggestions?tab=boat&tag=Taxi"},
		{"recurring with bad date", "/api/1/recurring?date=March"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, server.URL+tt.path)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("GET %s status = %d, expected %d", tt.path, resp.StatusCode, http.StatusBadRequest)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, false)

	resp := get(t, server.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}
}
