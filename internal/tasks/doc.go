// Package tasks runs long playlist operations in the background with progress reporting.
//
// # Bulk Export
//
// [Exporter.BulkExport] writes many playlists to disk at once:
//
//   - A producer loads each playlist (with its songs and owner), paced by a rate limiter
//   - A fixed pool of workers hands loaded playlists to [formatter.Write]
//   - Failures are recorded per playlist and never abort the run
//   - A manifest (export_manifest.json) summarizing every result is written last
//
// # Progress Reporting
//
// Operations accept an optional send-only channel of [ProgressUpdate].
// Updates use select with default so a slow or absent reader never blocks the export.
package tasks
