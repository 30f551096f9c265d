package location

import (
	"encoding/json"
	"math"
	"reflect"
)

const (
	ReasonMissing    = "no location data provided"
	ReasonNotNumbers = "latitude and longitude must be numbers"
	ReasonNaN        = "latitude and longitude cannot be NaN"
	ReasonLatitude   = "latitude must be between -90 and 90"
	ReasonLongitude  = "longitude must be between -180 and 180"
)

// Input is a location as supplied by the client. Lat and Lng are kept untyped
// so that malformed values reach Validate instead of failing body parsing.
type Input struct {
	Lat       any `json:"lat"`
	Lng       any `json:"lng"`
	Accuracy  any `json:"accuracy,omitempty"`
	Timestamp any `json:"timestamp,omitempty"`
}

type Coordinate struct {
	Lat float64
	Lng float64
}

type Result struct {
	Valid      bool
	Reason     string
	Coordinate Coordinate
}

// Validate checks raw against the coordinate invariants. Checks run in a fixed
// order and the first failure decides the reason.
func Validate(raw *Input) Result {
	if raw == nil {
		return Result{Reason: ReasonMissing}
	}

	lat, latOK := toFloat(raw.Lat)
	lng, lngOK := toFloat(raw.Lng)
	if !latOK || !lngOK {
		return Result{Reason: ReasonNotNumbers}
	}

	if math.IsNaN(lat) || math.IsNaN(lng) {
		return Result{Reason: ReasonNaN}
	}

	if lat < -90 || lat > 90 {
		return Result{Reason: ReasonLatitude}
	}

	if lng < -180 || lng > 180 {
		return Result{Reason: ReasonLongitude}
	}

	return Result{Valid: true, Coordinate: Coordinate{Lat: lat, Lng: lng}}
}

// AccuracyMeters returns the reported accuracy in metres, if it is a usable number.
func (i *Input) AccuracyMeters() (float64, bool) {
	if i == nil {
		return 0, false
	}

	v, ok := toFloat(i.Accuracy)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// FixTime returns the client supplied fix time, if present.
func (i *Input) FixTime() (string, bool) {
	if i == nil {
		return "", false
	}

	ts, ok := i.Timestamp.(string)
	if !ok || ts == "" {
		return "", false
	}

	return ts, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}
