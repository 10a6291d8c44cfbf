package itunes

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/spirotunes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestLoad(t *testing.T) {
	lib, err := Load(filepath.Join("testdata", "library.xml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "library.xml"), lib.Path)
	require.Len(t, lib.Tracks, 5)

	ids := make([]string, len(lib.Tracks))
	for i, tr := range lib.Tracks {
		ids[i] = tr.ID
	}
	assert.Equal(t, []string{"101", "102", "103", "104", "105"}, ids)

	first := lib.Tracks[0]
	assert.Equal(t, model.Present("Come Together"), first.Name)
	assert.Equal(t, model.Present(259000), first.TotalTime)
	assert.Equal(t, model.Present(80), first.AlbumRating)

	noName := lib.Tracks[3]
	assert.Equal(t, model.FieldAbsent, noName.Name.State)

	badTime := lib.Tracks[4]
	assert.Equal(t, model.FieldMalformed, badTime.TotalTime.State)
	assert.Equal(t, model.FieldPresent, badTime.AlbumRating.State)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestDecode_Binary(t *testing.T) {
	doc := map[string]any{
		"Tracks": map[string]any{
			"7": map[string]any{"Name": "Here Comes the Sun", "Total Time": 185000},
		},
	}
	data, err := plist.Marshal(doc, plist.BinaryFormat)
	require.NoError(t, err)

	lib, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, lib.Tracks, 1)
	assert.Equal(t, model.Present("Here Comes the Sun"), lib.Tracks[0].Name)
	assert.Equal(t, model.Present(185000), lib.Tracks[0].TotalTime)
	assert.Equal(t, model.FieldAbsent, lib.Tracks[0].AlbumRating.State)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		noTrack bool
	}{
		{"not a plist", "this is not a property list <<<", false},
		{"missing Tracks", `<plist version="1.0"><dict><key>Playlists</key><array/></dict></plist>`, true},
		{"Tracks not a dict", `<plist version="1.0"><dict><key>Tracks</key><string>x</string></dict></plist>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.noTrack, errors.Is(err, ErrNoTracks))
		})
	}
}

func TestDecode_SkipsNonDictRecords(t *testing.T) {
	doc := `<plist version="1.0"><dict><key>Tracks</key><dict>
		<key>1</key><string>bogus</string>
		<key>2</key><dict><key>Name</key><string>Sun King</string></dict>
	</dict></dict></plist>`

	lib, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, lib.Tracks, 1)
	assert.Equal(t, "2", lib.Tracks[0].ID)
}

func TestIntField(t *testing.T) {
	rec := map[string]any{
		"u":    uint64(1000),
		"i":    int64(-3),
		"n":    7,
		"f":    float64(120000),
		"frac": 1.5,
		"s":    "1000",
	}

	tests := []struct {
		key  string
		want model.Field[int]
	}{
		{"u", model.Present(1000)},
		{"i", model.Present(-3)},
		{"n", model.Present(7)},
		{"f", model.Present(120000)},
		{"frac", model.Malformed[int]()},
		{"s", model.Malformed[int]()},
		{"missing", model.Field[int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IntField(rec, tt.key))
		})
	}
}

func TestStringField(t *testing.T) {
	rec := map[string]any{"Name": "Octopus's Garden", "Bad": uint64(1)}

	assert.Equal(t, model.Present("Octopus's Garden"), StringField(rec, "Name"))
	assert.Equal(t, model.Malformed[string](), StringField(rec, "Bad"))
	assert.Equal(t, model.FieldAbsent, StringField(rec, "Missing").State)
}
