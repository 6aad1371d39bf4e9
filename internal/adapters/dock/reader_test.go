package dock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/renato0307/autokey/internal/domain"
)

func dockFixture(labels ...string) preferences {
	var prefs preferences
	for _, l := range labels {
		prefs.PersistentApps = append(prefs.PersistentApps, persistentApp{TileData: tileData{FileLabel: l}})
	}
	return prefs
}

func TestParsePinnedApplications_Formats(t *testing.T) {
	formats := map[string]int{
		"binary": plist.BinaryFormat,
		"xml":    plist.XMLFormat,
	}

	for name, format := range formats {
		t.Run(name, func(t *testing.T) {
			data, err := plist.Marshal(dockFixture("Finder", "Safari", "", "Mail"), format)
			require.NoError(t, err)

			apps, err := ParsePinnedApplications(data)

			require.NoError(t, err)
			assert.Equal(t, domain.FallbackBindings{"Finder", "Safari", "Mail"}, apps)
		})
	}
}

func TestParsePinnedApplications_IgnoresOtherKeys(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>autohide</key>
	<true/>
	<key>persistent-apps</key>
	<array>
		<dict>
			<key>GUID</key>
			<integer>12345</integer>
			<key>tile-data</key>
			<dict>
				<key>book</key>
				<data>Ym9vaw==</data>
				<key>file-label</key>
				<string>iTerm</string>
			</dict>
		</dict>
	</array>
</dict>
</plist>`

	apps, err := ParsePinnedApplications([]byte(xml))

	require.NoError(t, err)
	assert.Equal(t, domain.FallbackBindings{"iTerm"}, apps)
}

func TestParsePinnedApplications_Invalid(t *testing.T) {
	_, err := ParsePinnedApplications([]byte(`<?xml version="1.0"?><plist version="1.0"><dict><key>persistent-apps</key>`))
	assert.Error(t, err)
}

func TestReader_PinnedApplications(t *testing.T) {
	path := filepath.Join(t.TempDir(), "com.apple.dock.plist")
	data, err := plist.Marshal(dockFixture("Finder", "Notes"), plist.BinaryFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	apps, err := NewReaderForPath(path).PinnedApplications()

	require.NoError(t, err)
	assert.Equal(t, domain.FallbackBindings{"Finder", "Notes"}, apps)
}

func TestReader_MissingFile(t *testing.T) {
	apps, err := NewReaderForPath(filepath.Join(t.TempDir(), "missing.plist")).PinnedApplications()

	assert.Error(t, err)
	assert.Nil(t, apps)
}
