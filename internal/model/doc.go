// Package model defines the core data structures used throughout
// the putemg-downloader application.
//
// # Record
//
// Record represents one experiment session from the dataset manifest,
// parsed from its canonical name:
//
//	rec, err := model.ParseRecord("emg_gestures-03-sequential-2018-04-06-10-20-53-131")
//	fmt.Println(rec.ParticipantID) // "03"
//	fmt.Println(rec.Name())        // the original name, unchanged
//
// Parsing and formatting are exact inverses over well-formed names, so
// a Record can always be turned back into the remote file basename it
// was read from.
//
// # Errors
//
// ParseRecord fails only on a grammar mismatch, with *MalformedRecordError:
//
//	var malformed *model.MalformedRecordError
//	if errors.As(err, &malformed) {
//	    log.Fatalf("bad manifest line: %s", malformed.Name)
//	}
package model
