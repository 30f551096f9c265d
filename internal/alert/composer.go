package alert

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"text/template"
	"time"

	"github.com/Behyna/safetycheck/internal/location"
)

const (
	MapURLFormat    = "https://maps.google.com/maps?q=%s,%s"
	TimeLayout      = time.RFC1123
	UnknownAccuracy = "Unknown"
)

var emergencyTemplate = template.Must(template.New("emergency").Parse(
	`🚨 EMERGENCY ALERT 🚨

Your emergency contact has NOT responded to their safety check-in and may need immediate assistance.

{{if .LocationAvailable -}}
📍 LOCATION: {{.MapURL}}
📍 Coordinates: {{.Coordinates}}
🎯 Accuracy: {{.Accuracy}}
🕐 Location time: {{.LocationTime}}
{{- else -}}
📍 LOCATION: Unavailable ({{.LocationReason}})
{{- end}}

⚠️ Please check on them IMMEDIATELY or contact local emergency services if needed.

Alert generated: {{.GeneratedAt}}

This is an automated safety alert from SafetyCheck app.`))

var testTemplate = template.Must(template.New("test").Parse(
	`📱 SafetyCheck Test Message

This is a test message from your SafetyCheck app to verify SMS functionality is working correctly.

✅ If you receive this message, your emergency alerts are properly configured.

Time: {{.GeneratedAt}}

You can safely ignore this test message.`))

type emergencyView struct {
	LocationAvailable bool
	MapURL            string
	Coordinates       string
	Accuracy          string
	LocationTime      string
	LocationReason    string
	GeneratedAt       string
}

type testView struct {
	GeneratedAt string
}

// Composer renders SMS bodies. The clock is injectable so output is
// reproducible in tests.
type Composer struct {
	now func() time.Time
}

func NewComposer(now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{now: now}
}

// Emergency renders the alert body shared by every contact of one dispatch.
func (c *Composer) Emergency(loc location.Result, input *location.Input) (string, error) {
	generatedAt := c.now()

	view := emergencyView{
		LocationAvailable: loc.Valid,
		LocationReason:    loc.Reason,
		GeneratedAt:       generatedAt.Format(TimeLayout),
	}

	if loc.Valid {
		view.MapURL = MapURL(loc.Coordinate)
		view.Coordinates = fmt.Sprintf("%.6f, %.6f", loc.Coordinate.Lat, loc.Coordinate.Lng)
		view.Accuracy = formatAccuracy(input)
		view.LocationTime = generatedAt.Format(TimeLayout)
		if ts, ok := input.FixTime(); ok {
			view.LocationTime = ts
		}
	}

	return render(emergencyTemplate, view)
}

func (c *Composer) Test() (string, error) {
	return render(testTemplate, testView{GeneratedAt: c.now().Format(TimeLayout)})
}

func MapURL(coord location.Coordinate) string {
	return fmt.Sprintf(MapURLFormat,
		strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		strconv.FormatFloat(coord.Lng, 'f', -1, 64))
}

func formatAccuracy(input *location.Input) string {
	accuracy, ok := input.AccuracyMeters()
	if !ok {
		return UnknownAccuracy
	}
	return fmt.Sprintf("±%dm", int64(math.Round(accuracy)))
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
