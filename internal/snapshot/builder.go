// Package snapshot builds the static data file the pre-rendered site reads
// instead of calling the API at runtime.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/pkg/logger"
)

// API endpoints captured in the snapshot.
const (
	WeddingDetailsPath = "/api/wedding-details"
	PhotosPath         = "/api/photos?approved=true"
	SchedulePath       = "/api/schedule"
	PlaylistPath       = "/api/playlist"
)

// Fetcher is the read side of *httpclient.Client.
type Fetcher interface {
	Get(ctx context.Context, path string, out interface{}) error
}

// Builder fetches the snapshot resources and writes them to one JSON file.
type Builder struct {
	client  Fetcher
	outPath string
	now     func() time.Time
	logger  zerolog.Logger
}

// NewBuilder creates a Builder writing to outPath.
func NewBuilder(client Fetcher, outPath string) *Builder {
	return &Builder{
		client:  client,
		outPath: outPath,
		now:     time.Now,
		logger:  logger.Component("snapshot"),
	}
}

// OutPath returns the file the builder writes.
func (b *Builder) OutPath() string {
	return b.outPath
}

// Build fetches every resource concurrently. The first failure cancels the
// remaining fetches and is returned; no partial snapshot is produced.
func (b *Builder) Build(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	targets := []struct {
		path string
		dst  *json.RawMessage
	}{
		{WeddingDetailsPath, &snap.WeddingDetails},
		{PhotosPath, &snap.Photos},
		{SchedulePath, &snap.Schedule},
		{PlaylistPath, &snap.Playlist},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := b.client.Get(gctx, target.path, target.dst); err != nil {
				return fmt.Errorf("fetch %s: %w", target.path, err)
			}
			b.logger.Debug().Str("path", target.path).Int("bytes", len(*target.dst)).Msg("Fetched snapshot resource")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, target := range targets {
		if len(*target.dst) == 0 {
			*target.dst = json.RawMessage("null")
		}
	}
	snap.BuildTime = b.now().UTC()
	return snap, nil
}

// Run builds the snapshot and writes it. Errors are logged before they are
// returned so the CLI can exit non-zero.
func (b *Builder) Run(ctx context.Context) error {
	snap, err := b.Build(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to build static snapshot")
		return err
	}

	if err := Write(b.outPath, snap); err != nil {
		b.logger.Error().Err(err).Str("path", b.outPath).Msg("Failed to write static snapshot")
		return err
	}

	b.logger.Info().Str("path", b.outPath).Time("buildTime", snap.BuildTime).Msg("Static snapshot written")
	return nil
}

// Write serializes snap to path, creating the directory if needed. The file is
// written to a temporary sibling and renamed so readers never see a partial
// snapshot.
func Write(path string, snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot at path.
func Load(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
