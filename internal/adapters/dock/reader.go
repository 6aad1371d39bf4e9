package dock

import (
	"fmt"
	"os"
	"strings"

	"howett.net/plist"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/paths"
	"github.com/renato0307/autokey/internal/ports"
)

type tileData struct {
	FileLabel string `plist:"file-label"`
}

type persistentApp struct {
	TileData tileData `plist:"tile-data"`
}

// preferences is the part of com.apple.dock.plist we read
type preferences struct {
	PersistentApps []persistentApp `plist:"persistent-apps"`
}

// Reader implements ports.FallbackSource over the Dock preferences file
type Reader struct {
	path string
}

// Compile-time interface verification
var _ ports.FallbackSource = (*Reader)(nil)

// NewReader creates a reader for the current user's Dock preferences
func NewReader() *Reader {
	return &Reader{path: paths.GetDockPlistPath()}
}

// NewReaderForPath creates a reader for an explicit plist file
func NewReaderForPath(path string) *Reader {
	return &Reader{path: path}
}

// PinnedApplications implements ports.FallbackSource.PinnedApplications.
// Labels are returned in Dock order; tiles without a label are skipped.
func (r *Reader) PinnedApplications() (domain.FallbackBindings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dock preferences: %w", err)
	}

	apps, err := ParsePinnedApplications(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	logging.Logger.Debug("Dock applications loaded", "path", r.path, "count", len(apps))
	return apps, nil
}

// ParsePinnedApplications decodes a Dock plist in any of the plist formats
func ParsePinnedApplications(data []byte) (domain.FallbackBindings, error) {
	var prefs preferences
	format, err := plist.Unmarshal(data, &prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dock preferences: %w", err)
	}
	logging.Logger.Debug("Dock plist decoded", "format", plist.FormatNames[format])

	apps := make(domain.FallbackBindings, 0, len(prefs.PersistentApps))
	for _, app := range prefs.PersistentApps {
		label := strings.TrimSpace(app.TileData.FileLabel)
		if label == "" {
			continue
		}
		apps = append(apps, label)
	}
	return apps, nil
}
