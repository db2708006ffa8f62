package app

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/javaBin/talks-site/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PhotoStatus is the outcome of a speaker photo download
type PhotoStatus string

const (
	PhotoSkipped    PhotoStatus = "skipped"
	PhotoDownloaded PhotoStatus = "downloaded"
	PhotoFailed     PhotoStatus = "failed"
)

// PhotoResult holds the speaker after a photo download attempt. On failure
// the speaker is unchanged and Err holds the cause.
type PhotoResult struct {
	Speaker domain.SiteSpeaker
	Status  PhotoStatus
	Err     error
}

// speakerImagesPath is the site path of the downloaded speaker photos
const speakerImagesPath = "/images/speakers"

// enrichPhoto downloads the photo of a speaker into the site static images,
// pointing its photoURL to the local copy
func (s *SiteService) enrichPhoto(ctx context.Context, speaker domain.SiteSpeaker) PhotoResult {
	if speaker.PhotoURL == "" {
		return PhotoResult{Speaker: speaker, Status: PhotoSkipped}
	}

	if !isFileName(speaker.Key) {
		err := fmt.Errorf("%w: speaker %q has key %q", domain.ErrInvalidKey, speaker.Name, speaker.Key)
		return PhotoResult{Speaker: speaker, Status: PhotoFailed, Err: err}
	}

	dest := filepath.Join(s.opts.SpeakerImagesDir, speaker.Key)
	file, err := s.deps.Photos.Download(ctx, speaker.PhotoURL, dest)
	if err != nil {
		return PhotoResult{Speaker: speaker, Status: PhotoFailed, Err: err}
	}

	speaker.PhotoURL = path.Join(speakerImagesPath, file)
	return PhotoResult{Speaker: speaker, Status: PhotoDownloaded}
}

// isFileName reports whether key names a file inside its directory
func isFileName(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// enrichPhotos downloads the photos of all speakers concurrently and waits for
// every download. The order of speakers is preserved.
func (s *SiteService) enrichPhotos(ctx context.Context, speakers []domain.SiteSpeaker) []domain.SiteSpeaker {
	results := make([]PhotoResult, len(speakers))

	var g errgroup.Group
	g.SetLimit(s.opts.PhotoConcurrency)
	for i, speaker := range speakers {
		g.Go(func() error {
			results[i] = s.enrichPhoto(ctx, speaker)
			return nil
		})
	}
	_ = g.Wait()

	enriched := make([]domain.SiteSpeaker, len(results))
	for i, result := range results {
		s.recorder.IncPhotoDownload(string(result.Status))
		enriched[i] = result.Speaker
	}
	return enriched
}
