package tcx

import (
	"time"

	"github.com/muktihari/xmltokenizer"
)

// CourseList groups saved courses.
type CourseList struct {
	Courses []Course
}

func (l *CourseList) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Course": elementList(&l.Courses),
	})
}

// Course is a saved route with its laps and track.
type Course struct {
	Name        *string
	Laps        []CourseLap `validate:"dive"`
	TrackPoints []TrackPoint
	Notes       *string
	CoursePoint *CoursePoint
	Creator     Source
}

func (c *Course) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Name":        textOpt(&c.Name),
		"Lap":         elementList(&c.Laps),
		"Track":       track(&c.TrackPoints),
		"Notes":       textOpt(&c.Notes),
		"CoursePoint": elementOpt(&c.CoursePoint),
		"Creator":     sourceOf(&c.Creator),
	})
}

// CourseLap summarizes one lap of a course between two positions.
type CourseLap struct {
	TotalTimeSeconds    *float64
	DistanceMeters      *float64
	BeginPosition       *Position
	BeginAltitudeMeters *float64
	EndPosition         *Position
	EndAltitudeMeters   *float64
	AverageHeartRateBpm *uint8
	MaximumHeartRateBpm *uint8
	Intensity           *Intensity
	Cadence             *uint8 `validate:"omitempty,max=254"`
}

func (l *CourseLap) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"TotalTimeSeconds":    float64Opt(&l.TotalTimeSeconds),
		"DistanceMeters":      float64Opt(&l.DistanceMeters),
		"BeginPosition":       elementOpt(&l.BeginPosition),
		"BeginAltitudeMeters": float64Opt(&l.BeginAltitudeMeters),
		"EndPosition":         elementOpt(&l.EndPosition),
		"EndAltitudeMeters":   float64Opt(&l.EndAltitudeMeters),
		"AverageHeartRateBpm": valueOf(uint8Opt(&l.AverageHeartRateBpm)),
		"MaximumHeartRateBpm": valueOf(uint8Opt(&l.MaximumHeartRateBpm)),
		"Intensity":           enumOpt(&l.Intensity, ParseIntensity),
		"Cadence":             uint8Opt(&l.Cadence),
	})
}

// CoursePoint marks a landmark along a course.
type CoursePoint struct {
	Name           *string
	Time           *time.Time
	Position       *Position
	AltitudeMeters *float64
	PointType      *CoursePointType
	Notes          *string
}

func (p *CoursePoint) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Name":           textOpt(&p.Name),
		"Time":           timeOpt(&p.Time),
		"Position":       elementOpt(&p.Position),
		"AltitudeMeters": float64Opt(&p.AltitudeMeters),
		"PointType":      enumOpt(&p.PointType, ParseCoursePointType),
		"Notes":          textOpt(&p.Notes),
	})
}
