package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestOneLine(t *testing.T) {
	cases := map[string]string{
		"SELECT 1": "SELECT 1",
		"\n\tSELECT id,\n\t       rating\n\tFROM mood_entries\r\n": "SELECT id, rating FROM mood_entries",
		"": "",
	}
	for in, want := range cases {
		if got := oneLine(in); got != want {
			t.Fatalf("oneLine(%q) = %q", in, got)
		}
	}
}

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	// the root sits at error; the tracer still writes
	tr := LogTracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	ev := QueryEvent{
		SQL:     "SELECT id\n  FROM mood_entries WHERE owner_id = $1 AND notes = $2",
		Args:    []any{"alice", "private words"},
		Elapsed: 12 * time.Millisecond,
		Err:     errors.New("canceling statement due to statement timeout"),
	}
	for _, slow := range []bool{false, true} {
		buf.Reset()
		ev.Slow = slow
		tr.OnQuery(context.Background(), ev)

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("decode %q: %v", buf.String(), err)
		}
		wantLevel := "info"
		if slow {
			wantLevel = "warn"
		}
		if line["level"] != wantLevel || line["component"] != "pg" || line["slow"] != slow {
			t.Fatalf("line = %v", line)
		}
		if line["sql"] != "SELECT id FROM mood_entries WHERE owner_id = $1 AND notes = $2" || line["args"] != float64(2) {
			t.Fatalf("sql/args = %v %v", line["sql"], line["args"])
		}
		if line["error"] != ev.Err.Error() || line["elapsed"] != float64(12) {
			t.Fatalf("error/elapsed = %v %v", line["error"], line["elapsed"])
		}
		if bytes.Contains(buf.Bytes(), []byte("private words")) {
			t.Fatalf("bound values leaked into the log")
		}
	}
}
