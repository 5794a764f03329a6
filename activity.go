package tcx

import (
	"fmt"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// Activity is a single recorded activity, identified by its start
// timestamp.
type Activity struct {
	ID       time.Time
	Laps     []ActivityLap `validate:"dive"`
	Notes    *string
	Training *Training
	Creator  Source
	Sport    Sport
}

func (a *Activity) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	// Sport is an attribute on exported files, but some writers emit
	// it as a child element; both are accepted.
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "Sport" {
			sport, err := ParseSport(string(attr.Value))
			if err != nil {
				return fmt.Errorf("Sport: %w", err)
			}
			a.Sport = sport
		}
	}
	return readElement(tok, se, elementTable{
		"Id":       timeValue(&a.ID),
		"Lap":      elementList(&a.Laps),
		"Notes":    textOpt(&a.Notes),
		"Training": elementOpt(&a.Training),
		"Creator":  sourceOf(&a.Creator),
		"Sport":    enumValue(&a.Sport, ParseSport),
	})
}

// Training carries the plan an activity was recorded against and
// the result of a quick workout, if any.
type Training struct {
	QuickWorkoutResults *QuickWorkout
	Plan                *Plan
	VirtualPartner      bool
}

func (t *Training) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "VirtualPartner" {
			v, err := parseBool(attr.Value)
			if err != nil {
				return fmt.Errorf("VirtualPartner: %w", err)
			}
			t.VirtualPartner = v
		}
	}
	return readElement(tok, se, elementTable{
		"QuickWorkoutResults": elementOpt(&t.QuickWorkoutResults),
		"Plan":                elementOpt(&t.Plan),
	})
}

// Plan refers to the workout or course an activity followed.
type Plan struct {
	Name            *string `validate:"omitempty,min=1,max=15"`
	TrainingType    TrainingType
	IntervalWorkout bool
}

func (p *Plan) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		switch string(attr.Name.Local) {
		case "Type":
			t, err := ParseTrainingType(string(attr.Value))
			if err != nil {
				return fmt.Errorf("Type: %w", err)
			}
			p.TrainingType = t
		case "IntervalWorkout":
			v, err := parseBool(attr.Value)
			if err != nil {
				return fmt.Errorf("IntervalWorkout: %w", err)
			}
			p.IntervalWorkout = v
		}
	}
	return readElement(tok, se, elementTable{
		"Name": textOpt(&p.Name),
	})
}

// QuickWorkout is the result of a workout started without a plan.
type QuickWorkout struct {
	TotalTimeSeconds float64
	DistanceMeters   float64
}

func (q *QuickWorkout) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"TotalTimeSeconds": float64Value(&q.TotalTimeSeconds),
		"DistanceMeters":   float64Value(&q.DistanceMeters),
	})
}
