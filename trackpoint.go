package tcx

import (
	"fmt"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// TrackPoint is a single GPS observation within a track.
type TrackPoint struct {
	Time           time.Time
	Position       *Position
	AltitudeMeters *float64
	DistanceMeters *float64
	HeartRateBpm   *uint8
	Cadence        *uint8 `validate:"omitempty,max=254"`
	SensorState    *SensorState
	Extension      *TrackPointExtension
}

func (p *TrackPoint) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Time":           timeValue(&p.Time),
		"Position":       elementOpt(&p.Position),
		"AltitudeMeters": float64Opt(&p.AltitudeMeters),
		"DistanceMeters": float64Opt(&p.DistanceMeters),
		"HeartRateBpm":   valueOf(uint8Opt(&p.HeartRateBpm)),
		"Cadence":        uint8Opt(&p.Cadence),
		"SensorState":    enumOpt(&p.SensorState, ParseSensorState),
		"Extensions":     within("TPX", elementOpt(&p.Extension)),
	})
}

// track reads a Track element, appending its points to dst. A lap
// may carry several Track elements; their points are appended in
// document order.
func track(dst *[]TrackPoint) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		return readElement(tok, se, elementTable{
			"Trackpoint": elementList(dst),
		})
	}
}

// Position is a point on the earth's surface.
type Position struct {
	LatitudeDegrees  float64 `validate:"gte=-90,lte=90"`
	LongitudeDegrees float64 `validate:"gte=-180,lte=180"`
}

func (p *Position) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"LatitudeDegrees":  float64Value(&p.LatitudeDegrees),
		"LongitudeDegrees": float64Value(&p.LongitudeDegrees),
	})
}

// TrackPointExtension is the Garmin TPX vendor extension block of a
// track point.
type TrackPointExtension struct {
	Speed         *float64
	RunCadence    *uint8 `validate:"omitempty,max=254"`
	Watts         *uint16
	CadenceSensor *CadenceSensorType
}

func (e *TrackPointExtension) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "CadenceSensor" {
			c, err := ParseCadenceSensorType(string(attr.Value))
			if err != nil {
				return fmt.Errorf("CadenceSensor: %w", err)
			}
			e.CadenceSensor = &c
		}
	}
	return readElement(tok, se, elementTable{
		"Speed":      float64Opt(&e.Speed),
		"RunCadence": uint8Opt(&e.RunCadence),
		"Watts":      uint16Opt(&e.Watts),
	})
}
