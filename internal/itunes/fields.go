package itunes

import (
	"math"

	"github.com/handiism/spirotunes/internal/model"
)

// Track record keys.
const (
	KeyName        = "Name"
	KeyTotalTime   = "Total Time"
	KeyAlbumRating = "Album Rating"
)

// StringField reads a string value from a track record.
func StringField(rec map[string]any, key string) model.Field[string] {
	v, ok := rec[key]
	if !ok {
		return model.Field[string]{}
	}
	s, ok := v.(string)
	if !ok {
		return model.Malformed[string]()
	}
	return model.Present(s)
}

// IntField reads an integer value from a track record. Integral reals are
// accepted; anything else present under the key is malformed.
func IntField(rec map[string]any, key string) model.Field[int] {
	v, ok := rec[key]
	if !ok {
		return model.Field[int]{}
	}
	switch n := v.(type) {
	case uint64:
		if n > math.MaxInt {
			return model.Malformed[int]()
		}
		return model.Present(int(n))
	case int64:
		return model.Present(int(n))
	case int:
		return model.Present(n)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return model.Malformed[int]()
		}
		return model.Present(int(n))
	default:
		return model.Malformed[int]()
	}
}
