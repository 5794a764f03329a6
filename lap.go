package tcx

import (
	"fmt"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// ActivityLap is one lap of an activity. Its start time is carried
// on the element itself as the StartTime attribute.
type ActivityLap struct {
	StartTime           time.Time
	TotalTimeSeconds    float64
	DistanceMeters      float64
	MaximumSpeed        *float64
	Calories            uint16
	AverageHeartRateBpm *uint8 `validate:"omitempty,min=1"`
	MaximumHeartRateBpm *uint8 `validate:"omitempty,min=1"`
	Intensity           Intensity
	Cadence             *uint8 `validate:"omitempty,max=254"`
	TriggerMethod       TriggerMethod
	TrackPoints         []TrackPoint `validate:"dive"`
	Notes               *string
	Extension           *LapExtension
}

func (l *ActivityLap) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "StartTime" {
			t, err := parseTime(attr.Value)
			if err != nil {
				return fmt.Errorf("StartTime: %w", err)
			}
			l.StartTime = t
		}
	}
	return readElement(tok, se, elementTable{
		"TotalTimeSeconds":    float64Value(&l.TotalTimeSeconds),
		"DistanceMeters":      float64Value(&l.DistanceMeters),
		"MaximumSpeed":        float64Opt(&l.MaximumSpeed),
		"Calories":            uint16Value(&l.Calories),
		"AverageHeartRateBpm": valueOf(uint8Opt(&l.AverageHeartRateBpm)),
		"MaximumHeartRateBpm": valueOf(uint8Opt(&l.MaximumHeartRateBpm)),
		"Intensity":           enumValue(&l.Intensity, ParseIntensity),
		"Cadence":             uint8Opt(&l.Cadence),
		"TriggerMethod":       enumValue(&l.TriggerMethod, ParseTriggerMethod),
		"Track":               track(&l.TrackPoints),
		"Notes":               textOpt(&l.Notes),
		"Extensions":          within("LX", elementOpt(&l.Extension)),
	})
}

// LapExtension is the Garmin LX vendor extension block of a lap.
type LapExtension struct {
	AvgSpeed       *float64
	MaxBikeCadence *uint8 `validate:"omitempty,max=254"`
	AvgRunCadence  *uint8 `validate:"omitempty,max=254"`
	MaxRunCadence  *uint8 `validate:"omitempty,max=254"`
	Steps          *uint16
	AvgWatts       *uint16
	MaxWatts       *uint16
}

func (e *LapExtension) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"AvgSpeed":       float64Opt(&e.AvgSpeed),
		"MaxBikeCadence": uint8Opt(&e.MaxBikeCadence),
		"AvgRunCadence":  uint8Opt(&e.AvgRunCadence),
		"MaxRunCadence":  uint8Opt(&e.MaxRunCadence),
		"Steps":          uint16Opt(&e.Steps),
		"AvgWatts":       uint16Opt(&e.AvgWatts),
		"MaxWatts":       uint16Opt(&e.MaxWatts),
	})
}
