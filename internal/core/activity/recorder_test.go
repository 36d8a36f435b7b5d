package activity

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/edgepanel/internal/protocol"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 2, 15, 4, 5, 0, time.Local)
	return func() time.Time { return t0 }
}

func TestNewRecorder_Defaults(t *testing.T) {
	r := NewRecorder()

	if r.Status() != ReadyStatus {
		t.Errorf("expected ready status, got %+v", r.Status())
	}
	if r.Len() != 0 {
		t.Errorf("expected empty log, got %d entries", r.Len())
	}
	if r.Capacity() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, r.Capacity())
	}
	if r.Response() != nil {
		t.Error("expected no response")
	}
}

func TestAppendLog_AssignsSequentialIDsAndTimestamp(t *testing.T) {
	r := NewRecorder(WithClock(fixedClock()))

	e1 := r.AppendLog("first", KindInfo)
	e2 := r.AppendLog("second", KindSuccess)

	if e1.ID != 1 || e2.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", e1.ID, e2.ID)
	}
	if e1.Timestamp != "15:04:05" {
		t.Errorf("expected timestamp 15:04:05, got %q", e1.Timestamp)
	}

	entries := r.Entries()
	if entries[0].Message != "second" || entries[1].Message != "first" {
		t.Errorf("expected newest first, got %q then %q", entries[0].Message, entries[1].Message)
	}
}

func TestAppendLog_BoundedNewestFirst(t *testing.T) {
	tests := []int{0, 1, 49, 50, 51, 120}

	for _, n := range tests {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			r := NewRecorder()
			for i := 0; i < n; i++ {
				r.AppendLog(fmt.Sprintf("entry %d", i+1), KindInfo)
			}

			want := min(n, DefaultCapacity)
			entries := r.Entries()
			if len(entries) != want {
				t.Fatalf("expected %d entries, got %d", want, len(entries))
			}
			for i, e := range entries {
				wantID := int64(n - i)
				if e.ID != wantID {
					t.Fatalf("entry %d: expected id %d, got %d", i, wantID, e.ID)
				}
				if i > 0 && entries[i-1].ID <= e.ID {
					t.Fatalf("ids not strictly descending at %d", i)
				}
			}
		})
	}
}

func TestAppendLog_CustomCapacity(t *testing.T) {
	r := NewRecorder(WithCapacity(3))
	for i := 0; i < 5; i++ {
		r.AppendLog("x", KindInfo)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}
	if r.Entries()[2].ID != 3 {
		t.Errorf("expected oldest kept id 3, got %d", r.Entries()[2].ID)
	}

	if NewRecorder(WithCapacity(0)).Capacity() != DefaultCapacity {
		t.Error("non-positive capacity should be ignored")
	}
}

func TestClearLog_KeepsIDCounter(t *testing.T) {
	r := NewRecorder()
	var maxID int64
	for i := 0; i < 7; i++ {
		maxID = r.AppendLog("x", KindInfo).ID
	}

	r.ClearLog()
	if r.Len() != 0 {
		t.Fatalf("expected empty log after clear, got %d", r.Len())
	}

	e := r.AppendLog("after clear", KindInfo)
	if e.ID <= maxID {
		t.Errorf("expected id > %d after clear, got %d", maxID, e.ID)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	r := NewRecorder()
	r.AppendLog("original", KindInfo)

	entries := r.Entries()
	entries[0].Message = "mutated"

	if r.Entries()[0].Message != "original" {
		t.Error("mutating the returned slice changed recorder state")
	}
}

func TestRecordOutcome_Success(t *testing.T) {
	r := NewRecorder()
	out := protocol.Succeeded(200, "OK", json.RawMessage(`{"ready":true}`))

	r.RecordOutcome(out, "GET", "/start")

	want := Status{Kind: StatusSuccess, Message: "GET /start successful"}
	if r.Status() != want {
		t.Errorf("expected %+v, got %+v", want, r.Status())
	}
	if r.Len() != 1 {
		t.Fatalf("expected exactly one entry, got %d", r.Len())
	}
	e := r.Entries()[0]
	if e.Kind != KindSuccess {
		t.Errorf("expected success kind, got %s", e.Kind)
	}
	if !strings.Contains(e.Message, "200 OK") {
		t.Errorf("expected message to mention 200 OK, got %q", e.Message)
	}
	if r.Response() != out {
		t.Error("expected outcome stored as current response")
	}
}

func TestRecordOutcome_Failure(t *testing.T) {
	tests := []struct {
		name    string
		out     *protocol.Outcome
		wantMsg string
	}{
		{
			name:    "http status",
			out:     protocol.Failed(500, "Internal Server Error", "request failed with status code 500"),
			wantMsg: "500 Internal Server Error",
		},
		{
			name:    "no response",
			out:     protocol.Failed(0, "Network Error", "timeout of 10s exceeded"),
			wantMsg: "timeout of 10s exceeded",
		},
		{
			name:    "broken after 2xx status line",
			out:     protocol.Failed(200, "OK", "reading response: unexpected EOF"),
			wantMsg: "- reading response: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder()
			r.RecordOutcome(tt.out, "POST", "/text")

			want := Status{Kind: StatusError, Message: "POST /text failed"}
			if r.Status() != want {
				t.Errorf("expected %+v, got %+v", want, r.Status())
			}
			if r.Len() != 1 {
				t.Fatalf("expected exactly one entry, got %d", r.Len())
			}
			e := r.Entries()[0]
			if e.Kind != KindError {
				t.Errorf("expected error kind, got %s", e.Kind)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("expected %q in %q", tt.wantMsg, e.Message)
			}
		})
	}
}

func TestClearResponse(t *testing.T) {
	r := NewRecorder()
	r.RecordOutcome(protocol.Succeeded(200, "OK", nil), "GET", "/stop")
	r.ClearResponse()

	if r.Response() != nil {
		t.Error("expected response cleared")
	}
	if r.Status().Kind != StatusSuccess {
		t.Error("clearing the response should not change status")
	}
	if r.Len() != 1 {
		t.Error("clearing the response should not touch the log")
	}
}

func TestOnChange_FiresOnMutation(t *testing.T) {
	r := NewRecorder()
	calls := 0
	r.OnChange(func() { calls++ })

	r.SetStatus(StatusLoading, "GET /start...")
	r.AppendLog("x", KindInfo)
	r.RecordOutcome(protocol.Succeeded(200, "OK", nil), "GET", "/start")
	r.ClearLog()
	r.ClearResponse()

	if calls != 5 {
		t.Errorf("expected 5 notifications, got %d", calls)
	}
}

func TestKindStrings(t *testing.T) {
	if KindInfo.String() != "info" || KindSuccess.String() != "success" || KindError.String() != "error" {
		t.Error("unexpected entry kind names")
	}
	if StatusReady.String() != "ready" || StatusLoading.String() != "loading" ||
		StatusSuccess.String() != "success" || StatusError.String() != "error" {
		t.Error("unexpected status kind names")
	}

	data, err := json.Marshal(Entry{ID: 1, Message: "m", Kind: KindError, Timestamp: "10:00:00"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"type":"error"`) {
		t.Errorf("expected kind marshalled as text, got %s", data)
	}
}
