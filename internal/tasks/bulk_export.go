package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playharmony/internal/formatter"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultWorkers   = 4
	maxWorkers       = 10
	defaultRateLimit = 50.0
	manifestName     = "export_manifest.json"
)

// PlaylistSource loads a playlist together with its songs.
type PlaylistSource interface {
	Get(id string) (*models.Playlist, error)
}

// OwnerSource loads the owner of a playlist.
type OwnerSource interface {
	Get(id string) (*models.User, error)
}

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     formatter.Format // csv, md or txt
	OutputDir  string           // Base output directory (default: playlists_export_{epoch})
	NumWorkers int              // Concurrent writers (default: 4, max: 10)
	RateLimit  float64          // Playlist loads per second (default: 50)
}

// PlaylistExportResult is the outcome for one playlist.
type PlaylistExportResult struct {
	PlaylistID   string   `json:"playlist_id"`
	PlaylistName string   `json:"playlist_name"`
	Success      bool     `json:"success"`
	Files        []string `json:"files,omitempty"`
	Error        error    `json:"-"`
	ErrorText    string   `json:"error,omitempty"`
}

// BulkExportResult summarizes a bulk export. Results keep the order of the requested IDs.
type BulkExportResult struct {
	Format            formatter.Format       `json:"format"`
	ExportedAt        time.Time              `json:"exported_at"`
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	OutputDirectory   string                 `json:"output_directory"`
	Results           []PlaylistExportResult `json:"results"`
	ManifestPath      string                 `json:"-"`
}

type exportJob struct {
	index    int
	playlist *models.Playlist
	owner    *models.User
}

type indexedResult struct {
	index int
	PlaylistExportResult
}

// Exporter writes stored playlists to disk.
type Exporter struct {
	playlists PlaylistSource
	owners    OwnerSource
	logger    *log.Logger
}

// NewExporter creates an [Exporter]. owners may be nil, in which case exports omit owner details.
func NewExporter(playlists PlaylistSource, owners OwnerSource, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Exporter{playlists: playlists, owners: owners, logger: logger}
}

// BulkExport exports the playlists named by ids concurrently.
//
// Loading is paced by a rate limiter and writing fans out to a worker pool.
// A playlist that cannot be loaded or written is reported in the result without stopping the others.
// When ctx is cancelled the export stops early and the partial result is returned with ctx's error.
func (e *Exporter) BulkExport(ctx context.Context, prog chan<- ProgressUpdate, ids []string, opts BulkExportOpts) (*BulkExportResult, error) {
	if e.playlists == nil {
		return nil, fmt.Errorf("%w: playlist source", shared.ErrMissingArgument)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no playlists to export", shared.ErrInvalidArgument)
	}

	if opts.Format == "" {
		opts.Format = formatter.FormatText
	}
	if _, err := formatter.ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("playlists_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	if opts.NumWorkers > maxWorkers {
		opts.NumWorkers = maxWorkers
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		Format:          opts.Format,
		ExportedAt:      time.Now().UTC(),
		TotalPlaylists:  len(ids),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan exportJob, len(ids))
	results := make(chan indexedResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	// The producer counts toward wg so results is closed only after its last send.
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		sendProgress(prog, loadingPlaylistsUpdate(len(ids)))
		for i, id := range ids {
			if err := limiter.Wait(ctx); err != nil {
				return
			}

			playlist, err := e.playlists.Get(id)
			if err != nil {
				failed := indexedResult{i, PlaylistExportResult{
					PlaylistID:   id,
					PlaylistName: fmt.Sprintf("Unknown (%s)", id),
					Error:        fmt.Errorf("failed to load playlist: %w", err),
				}}
				select {
				case results <- failed:
				case <-ctx.Done():
					return
				}
				continue
			}

			select {
			case jobs <- exportJob{index: i, playlist: playlist, owner: e.owner(playlist)}:
			case <-ctx.Done():
				return
			}
			sendProgress(prog, exportingPlaylistUpdate(i+1, len(ids), playlist.Name()))
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedResult, 0, len(ids))
	for res := range results {
		collected = append(collected, res)
		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(len(collected), len(ids), res.PlaylistExportResult))
		} else {
			result.FailedExports++
			e.logger.Warn("playlist export failed", "id", res.PlaylistID, "error", res.Error)
			sendProgress(prog, exportFailedUpdate(len(collected), len(ids), res.PlaylistExportResult))
		}
	}

	sort.Slice(collected, func(a, b int) bool { return collected[a].index < collected[b].index })
	for _, res := range collected {
		if res.Error != nil {
			res.ErrorText = res.Error.Error()
		}
		result.Results = append(result.Results, res.PlaylistExportResult)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export cancelled after %d of %d playlists: %w", len(collected), len(ids), err)
	}

	manifestPath := filepath.Join(opts.OutputDir, manifestName)
	sendProgress(prog, manifestUpdate(manifestPath))
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	e.logger.Info("bulk export finished",
		"dir", opts.OutputDir, "ok", result.SuccessfulExports, "failed", result.FailedExports)
	return result, nil
}

func (e *Exporter) owner(p *models.Playlist) *models.User {
	if e.owners == nil {
		return nil
	}
	owner, err := e.owners.Get(p.UserID())
	if err != nil {
		e.logger.Debug("playlist owner not found", "playlist", p.ID(), "user", p.UserID())
		return nil
	}
	return owner
}

// exportWorker writes playlists from jobs until the channel closes or ctx is done.
func (e *Exporter) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan exportJob,
	results chan<- indexedResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- indexedResult{job.index, exportSinglePlaylist(job, opts)}
	}
}

// exportSinglePlaylist writes one playlist under opts.OutputDir named by its ID.
func exportSinglePlaylist(j exportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{
		PlaylistID:   j.playlist.ID(),
		PlaylistName: j.playlist.Name(),
		Files:        []string{},
	}

	base := filepath.Join(opts.OutputDir, j.playlist.ID())
	written, err := formatter.Write(j.playlist, j.owner, opts.Format, base)
	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		return result
	}

	result.Files = written.Files
	result.Success = true
	return result
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
