// Package http provides the HTTP client for talking to the dataset
// file share.
//
// The share speaks plain HTTP GET: the record manifest and every
// artifact are fetched by URL, and a non-2xx status is the only
// protocol-level error. One Client (and thus one connection pool) is
// shared by all concurrent fetches.
//
//	client := http.NewClient(0)
//	text, err := client.GetString(ctx, baseURL+"&files=records.txt")
//	err = client.DownloadFile(ctx, url, "Depth/record.zip", nil)
//
// DownloadFile writes through a staging file and renames on completion,
// so a file present at its final path is always complete.
package http
