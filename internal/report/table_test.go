package report

import (
	"strings"
	"testing"

	"github.com/biolab-put/putemg-downloader/internal/model"
)

func TestRenderRecords(t *testing.T) {
	rec, err := model.ParseRecord("emg_gestures-03-walk-2020-01-01-12-00-00-000")
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}

	out := RenderRecords([]model.Record{rec})

	for _, want := range []string{"Type", "ID", "Trajectory", "emg_gestures", "03", "walk", "2020-01-01", "12-00-00-000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRecords_Empty(t *testing.T) {
	out := RenderRecords(nil)
	if !strings.Contains(out, "Type") {
		t.Errorf("empty table should still render headers:\n%s", out)
	}
}
