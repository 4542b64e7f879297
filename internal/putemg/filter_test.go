package putemg

import (
	"errors"
	"reflect"
	"testing"

	"github.com/biolab-put/putemg-downloader/internal/model"
)

const sampleManifest = `emg_gestures-03-walk-2020-01-01-12-00-00-000
emg_force-07-sit-2020-02-02-08-30-00-500
emg_gestures-07-walk-2020-03-03-09-00-00-250
`

func mustManifest(t *testing.T, text string) *Manifest {
	t.Helper()
	m, err := ParseManifest(text)
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	return m
}

func TestParseManifest(t *testing.T) {
	m := mustManifest(t, sampleManifest)

	if len(m.Records) != 3 {
		t.Errorf("got %d records, want 3", len(m.Records))
	}

	wantIDs := []string{"03", "07"}
	if got := m.IDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("IDs() = %v, want %v", got, wantIDs)
	}

	if !m.HasID("03") {
		t.Error("HasID(03) = false, want true")
	}
	if m.HasID("99") {
		t.Error("HasID(99) = true, want false")
	}
}

func TestParseManifest_MalformedLineAborts(t *testing.T) {
	text := "emg_gestures-03-walk-2020-01-01-12-00-00-000\nnot-a-record\n"

	m, err := ParseManifest(text)
	if err == nil {
		t.Fatal("ParseManifest succeeded, want error")
	}
	if m != nil {
		t.Errorf("got partial manifest %+v, want nil", m)
	}

	var malformed *model.MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T, want *model.MalformedRecordError", err)
	}
}

func TestParseManifest_BlankLinesIgnored(t *testing.T) {
	text := "\nemg_gestures-03-walk-2020-01-01-12-00-00-000\n\n"

	m := mustManifest(t, text)
	if len(m.Records) != 1 {
		t.Errorf("got %d records, want 1", len(m.Records))
	}
}

func TestResolve(t *testing.T) {
	m := mustManifest(t, sampleManifest)

	tests := []struct {
		name      string
		query     Query
		wantNames []string
	}{
		{
			name: "type filter, all ids",
			query: Query{
				ExperimentTypes: []string{"emg_gestures"},
				MediaTypes:      []string{"data-csv"},
			},
			wantNames: []string{
				"emg_gestures-03-walk-2020-01-01-12-00-00-000",
				"emg_gestures-07-walk-2020-03-03-09-00-00-250",
			},
		},
		{
			name: "both types, one id",
			query: Query{
				ExperimentTypes: []string{"emg_gestures", "emg_force"},
				MediaTypes:      []string{"data-csv"},
				IDs:             []string{"07"},
			},
			wantNames: []string{
				"emg_force-07-sit-2020-02-02-08-30-00-500",
				"emg_gestures-07-walk-2020-03-03-09-00-00-250",
			},
		},
		{
			name: "type with no matching records",
			query: Query{
				ExperimentTypes: []string{"emg_force"},
				MediaTypes:      []string{"data-csv"},
				IDs:             []string{"03"},
			},
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Resolve(m, tt.query)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			var names []string
			for _, r := range records {
				names = append(names, r.Name())
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("Resolve() = %v, want %v", names, tt.wantNames)
			}
		})
	}
}

func TestResolve_SingleMatch(t *testing.T) {
	text := `emg_gestures-03-walk-2020-01-01-12-00-00-000
emg_force-07-sit-2020-02-02-08-30-00-500
`
	m := mustManifest(t, text)

	records, err := Resolve(m, Query{
		ExperimentTypes: []string{"emg_gestures"},
		MediaTypes:      []string{"data-csv"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0].Name(); got != "emg_gestures-03-walk-2020-01-01-12-00-00-000" {
		t.Errorf("records[0] = %q, want the gestures record", got)
	}
}

func TestResolve_ValidationErrors(t *testing.T) {
	m := mustManifest(t, sampleManifest)

	t.Run("missing arguments", func(t *testing.T) {
		_, err := Resolve(m, Query{MediaTypes: []string{"data-csv"}})
		if !errors.Is(err, ErrMissingArguments) {
			t.Errorf("error = %v, want ErrMissingArguments", err)
		}

		_, err = Resolve(m, Query{ExperimentTypes: []string{"emg_gestures"}})
		if !errors.Is(err, ErrMissingArguments) {
			t.Errorf("error = %v, want ErrMissingArguments", err)
		}
	})

	t.Run("invalid experiment type", func(t *testing.T) {
		_, err := Resolve(m, Query{
			ExperimentTypes: []string{"bogus"},
			MediaTypes:      []string{"data-csv"},
		})

		var invalid *InvalidExperimentTypeError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %T, want *InvalidExperimentTypeError", err)
		}
		if invalid.Value != "bogus" {
			t.Errorf("Value = %q, want %q", invalid.Value, "bogus")
		}
	})

	t.Run("invalid media type", func(t *testing.T) {
		_, err := Resolve(m, Query{
			ExperimentTypes: []string{"emg_gestures"},
			MediaTypes:      []string{"video"},
		})

		var invalid *InvalidMediaTypeError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %T, want *InvalidMediaTypeError", err)
		}
		if invalid.Value != "video" {
			t.Errorf("Value = %q, want %q", invalid.Value, "video")
		}
	})

	t.Run("media type substring is rejected", func(t *testing.T) {
		// "data" is a substring of supported names but not a
		// supported name itself; membership is exact.
		_, err := Resolve(m, Query{
			ExperimentTypes: []string{"emg_gestures"},
			MediaTypes:      []string{"data"},
		})

		var invalid *InvalidMediaTypeError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %T, want *InvalidMediaTypeError", err)
		}
	})

	t.Run("badly formed id", func(t *testing.T) {
		_, err := Resolve(m, Query{
			ExperimentTypes: []string{"emg_gestures"},
			MediaTypes:      []string{"data-csv"},
			IDs:             []string{"3"},
		})

		var invalid *InvalidIDError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %T, want *InvalidIDError", err)
		}
		if invalid.Unknown {
			t.Error("Unknown = true, want false for badly formed ID")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := Resolve(m, Query{
			ExperimentTypes: []string{"emg_gestures"},
			MediaTypes:      []string{"data-csv"},
			IDs:             []string{"99"},
		})

		var invalid *InvalidIDError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %T, want *InvalidIDError", err)
		}
		if !invalid.Unknown {
			t.Error("Unknown = false, want true for absent ID")
		}
		if invalid.Value != "99" {
			t.Errorf("Value = %q, want %q", invalid.Value, "99")
		}
	})
}

func TestResolve_SortedOutput(t *testing.T) {
	// Manifest deliberately out of order; Resolve returns records
	// sorted by (participant ID, date, time).
	text := `emg_gestures-07-walk-2020-03-03-09-00-00-250
emg_gestures-03-walk-2020-01-02-12-00-00-000
emg_gestures-03-walk-2020-01-02-08-00-00-000
emg_gestures-03-walk-2020-01-01-12-00-00-000
`
	m := mustManifest(t, text)

	records, err := Resolve(m, Query{
		ExperimentTypes: []string{"emg_gestures"},
		MediaTypes:      []string{"data-csv"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := []string{
		"emg_gestures-03-walk-2020-01-01-12-00-00-000",
		"emg_gestures-03-walk-2020-01-02-08-00-00-000",
		"emg_gestures-03-walk-2020-01-02-12-00-00-000",
		"emg_gestures-07-walk-2020-03-03-09-00-00-250",
	}
	for i, r := range records {
		if r.Name() != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, r.Name(), want[i])
		}
	}
}

func TestResolve_DuplicatesPreserved(t *testing.T) {
	text := `emg_gestures-03-walk-2020-01-01-12-00-00-000
emg_gestures-03-walk-2020-01-01-12-00-00-000
`
	m := mustManifest(t, text)

	records, err := Resolve(m, Query{
		ExperimentTypes: []string{"emg_gestures"},
		MediaTypes:      []string{"data-csv"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("got %d records, want 2 (duplicates preserved)", len(records))
	}
}

func TestParseMediaTypes(t *testing.T) {
	got, err := ParseMediaTypes([]string{"video-576p", "data-csv", "data-csv"})
	if err != nil {
		t.Fatalf("ParseMediaTypes failed: %v", err)
	}

	// Deduplicated and returned in canonical order.
	want := []MediaType{MediaDataCSV, MediaVideo576}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMediaTypes() = %v, want %v", got, want)
	}
}
