package tcx

import (
	"fmt"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// WorkoutList groups planned workouts.
type WorkoutList struct {
	Workouts []Workout
}

func (l *WorkoutList) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Workout": elementList(&l.Workouts),
	})
}

// Workout is a planned workout: a named list of steps, optionally
// scheduled and attributed to a creator.
type Workout struct {
	Name        *string
	Steps       []WorkoutStep
	ScheduledOn *time.Time
	Notes       *string
	Creator     Source
	Sport       *Sport
}

func (w *Workout) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "Sport" {
			sport, err := ParseSport(string(attr.Value))
			if err != nil {
				return fmt.Errorf("Sport: %w", err)
			}
			w.Sport = &sport
		}
	}
	return readElement(tok, se, elementTable{
		"Name":        textOpt(&w.Name),
		"Step":        stepList(&w.Steps),
		"ScheduledOn": timeOpt(&w.ScheduledOn),
		"Notes":       textOpt(&w.Notes),
		"Creator":     sourceOf(&w.Creator),
	})
}

// WorkoutStep is one entry of a workout's step list: either a
// single *Step or a *Repeat block, selected by the xsi:type
// attribute of the Step element.
type WorkoutStep interface {
	isWorkoutStep()
}

// stepList resolves the xsi:type attribute of a Step element and
// recurses into the matching reader, appending to dst. Unrecognized
// step types are skipped.
func stepList(dst *[]WorkoutStep) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		kind, err := resolveType(token)
		if err != nil {
			return err
		}
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		switch kind {
		case "Step_t":
			step := new(Step)
			if err := step.readFrom(tok, se); err != nil {
				return err
			}
			*dst = append(*dst, step)
		case "Repeat_t":
			rep := new(Repeat)
			if err := rep.readFrom(tok, se); err != nil {
				return err
			}
			*dst = append(*dst, rep)
		default:
			return skipElement(tok, se)
		}
		return nil
	}
}

// Step is a single workout step with an optional duration and
// training target.
type Step struct {
	StepID    *uint8
	Name      *string
	Duration  Duration
	Intensity *Intensity
	Target    Target
}

func (*Step) isWorkoutStep() {}

func (s *Step) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"StepId":    uint8Opt(&s.StepID),
		"Name":      textOpt(&s.Name),
		"Duration":  durationOf(&s.Duration),
		"Intensity": enumOpt(&s.Intensity, ParseIntensity),
		"Target":    targetOf(&s.Target),
	})
}

// Repeat repeats its child steps a fixed number of times.
type Repeat struct {
	StepID      *uint8
	Repetitions *uint8
	Children    []WorkoutStep
}

func (*Repeat) isWorkoutStep() {}

func (r *Repeat) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"StepId":      uint8Opt(&r.StepID),
		"Repetitions": uint8Opt(&r.Repetitions),
		"Child":       stepList(&r.Children),
	})
}

// Duration tells when a workout step ends. Concrete types are
// *DurationTime, *DurationDistance, *HeartRateAbove, *HeartRateBelow
// and *CaloriesBurned, selected by the Duration element's xsi:type
// attribute.
type Duration interface {
	isDuration()
}

// DurationTime ends a step after a number of seconds.
type DurationTime struct {
	Seconds uint16
}

func (*DurationTime) isDuration() {}

func (d *DurationTime) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Seconds": uint16Value(&d.Seconds),
	})
}

// DurationDistance ends a step after a number of meters.
type DurationDistance struct {
	Meters uint16
}

func (*DurationDistance) isDuration() {}

func (d *DurationDistance) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Meters": uint16Value(&d.Meters),
	})
}

// HeartRateAbove ends a step once the heart rate rises above the
// given beats per minute.
type HeartRateAbove struct {
	HeartRate uint8
}

func (*HeartRateAbove) isDuration() {}

func (d *HeartRateAbove) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"HeartRate": valueOf(uint8Value(&d.HeartRate)),
	})
}

// HeartRateBelow ends a step once the heart rate drops below the
// given beats per minute.
type HeartRateBelow struct {
	HeartRate uint8
}

func (*HeartRateBelow) isDuration() {}

func (d *HeartRateBelow) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"HeartRate": valueOf(uint8Value(&d.HeartRate)),
	})
}

// CaloriesBurned ends a step after a number of calories burned.
type CaloriesBurned struct {
	Calories uint16
}

func (*CaloriesBurned) isDuration() {}

func (d *CaloriesBurned) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Calories": uint16Value(&d.Calories),
	})
}

func durationOf(dst *Duration) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		kind, err := resolveType(token)
		if err != nil {
			return err
		}
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		switch kind {
		case "Time_t":
			d := new(DurationTime)
			if err := d.readFrom(tok, se); err != nil {
				return err
			}
			*dst = d
		case "Distance_t":
			d := new(DurationDistance)
			if err := d.readFrom(tok, se); err != nil {
				return err
			}
			*dst = d
		case "HeartRateAbove_t":
			d := new(HeartRateAbove)
			if err := d.readFrom(tok, se); err != nil {
				return err
			}
			*dst = d
		case "HeartRateBelow_t":
			d := new(HeartRateBelow)
			if err := d.readFrom(tok, se); err != nil {
				return err
			}
			*dst = d
		case "CaloriesBurned_t":
			d := new(CaloriesBurned)
			if err := d.readFrom(tok, se); err != nil {
				return err
			}
			*dst = d
		default:
			return skipElement(tok, se)
		}
		return nil
	}
}

// Target is what a workout step aims for. Concrete types are
// *SpeedTarget, *HeartRateTarget, *CadenceTarget and *NoTarget,
// selected by the Target element's xsi:type attribute.
type Target interface {
	isTarget()
}

// SpeedTarget aims for a speed zone.
type SpeedTarget struct {
	Zone Zone
}

func (*SpeedTarget) isTarget() {}

func (t *SpeedTarget) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"SpeedZone": zoneOf(&t.Zone),
	})
}

// HeartRateTarget aims for a heart-rate zone.
type HeartRateTarget struct {
	Zone Zone
}

func (*HeartRateTarget) isTarget() {}

func (t *HeartRateTarget) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"HeartRateZone": zoneOf(&t.Zone),
	})
}

// CadenceTarget aims for a cadence band in revolutions per minute.
type CadenceTarget struct {
	Low  *float64
	High *float64
}

func (*CadenceTarget) isTarget() {}

func (t *CadenceTarget) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Low":  float64Opt(&t.Low),
		"High": float64Opt(&t.High),
	})
}

// NoTarget is a step without a training target.
type NoTarget struct{}

func (*NoTarget) isTarget() {}

func targetOf(dst *Target) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		kind, err := resolveType(token)
		if err != nil {
			return err
		}
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		switch kind {
		case "Speed_t":
			t := new(SpeedTarget)
			if err := t.readFrom(tok, se); err != nil {
				return err
			}
			*dst = t
		case "HeartRate_t":
			t := new(HeartRateTarget)
			if err := t.readFrom(tok, se); err != nil {
				return err
			}
			*dst = t
		case "Cadence_t":
			t := new(CadenceTarget)
			if err := t.readFrom(tok, se); err != nil {
				return err
			}
			*dst = t
		case "None_t":
			*dst = new(NoTarget)
			return skipElement(tok, se)
		default:
			return skipElement(tok, se)
		}
		return nil
	}
}

// Zone is a speed or heart-rate band, either one of the device's
// predefined zones or a custom range. Concrete types are
// *PredefinedSpeedZone, *CustomSpeedZone, *PredefinedHeartRateZone
// and *CustomHeartRateZone.
type Zone interface {
	isZone()
}

// PredefinedSpeedZone refers to one of the device's speed zones by
// number.
type PredefinedSpeedZone struct {
	Number uint8
}

func (*PredefinedSpeedZone) isZone() {}

func (z *PredefinedSpeedZone) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Number": uint8Value(&z.Number),
	})
}

// CustomSpeedZone is an explicit speed band in meters per second.
type CustomSpeedZone struct {
	ViewAs                *SpeedType
	LowInMetersPerSecond  *float64
	HighInMetersPerSecond *float64
}

func (*CustomSpeedZone) isZone() {}

func (z *CustomSpeedZone) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"ViewAs":                enumOpt(&z.ViewAs, ParseSpeedType),
		"LowInMetersPerSecond":  float64Opt(&z.LowInMetersPerSecond),
		"HighInMetersPerSecond": float64Opt(&z.HighInMetersPerSecond),
	})
}

// PredefinedHeartRateZone refers to one of the device's heart-rate
// zones by number.
type PredefinedHeartRateZone struct {
	Number uint8
}

func (*PredefinedHeartRateZone) isZone() {}

func (z *PredefinedHeartRateZone) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Number": uint8Value(&z.Number),
	})
}

// CustomHeartRateZone is an explicit heart-rate band in beats per
// minute.
type CustomHeartRateZone struct {
	Low  *uint8
	High *uint8
}

func (*CustomHeartRateZone) isZone() {}

func (z *CustomHeartRateZone) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Low":  valueOf(uint8Opt(&z.Low)),
		"High": valueOf(uint8Opt(&z.High)),
	})
}

func zoneOf(dst *Zone) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		kind, err := resolveType(token)
		if err != nil {
			return err
		}
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		switch kind {
		case "PredefinedSpeedZone_t":
			z := new(PredefinedSpeedZone)
			if err := z.readFrom(tok, se); err != nil {
				return err
			}
			*dst = z
		case "CustomSpeedZone_t":
			z := new(CustomSpeedZone)
			if err := z.readFrom(tok, se); err != nil {
				return err
			}
			*dst = z
		case "PredefinedHeartRateZone_t":
			z := new(PredefinedHeartRateZone)
			if err := z.readFrom(tok, se); err != nil {
				return err
			}
			*dst = z
		case "CustomHeartRateZone_t":
			z := new(CustomHeartRateZone)
			if err := z.readFrom(tok, se); err != nil {
				return err
			}
			*dst = z
		default:
			return skipElement(tok, se)
		}
		return nil
	}
}
