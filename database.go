package tcx

import (
	"time"

	"github.com/muktihari/xmltokenizer"
)

// TrainingCenterDatabase is the root of a TCX document. All four
// top-level sections are independently optional; a valid document
// may carry only one of them.
type TrainingCenterDatabase struct {
	Folders    *Folders
	Activities *ActivityList
	Workouts   *WorkoutList
	Courses    *CourseList
	Author     Source
}

func (d *TrainingCenterDatabase) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Folders":    elementOpt(&d.Folders),
		"Activities": elementOpt(&d.Activities),
		"Workouts":   elementOpt(&d.Workouts),
		"Courses":    elementOpt(&d.Courses),
		"Author":     sourceOf(&d.Author),
	})
}

// ActivityList groups recorded activities and multi-sport sessions.
type ActivityList struct {
	Activities         []Activity `validate:"dive"`
	MultiSportSessions []MultiSportSession
}

func (l *ActivityList) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Activity":          elementList(&l.Activities),
		"MultiSportSession": elementList(&l.MultiSportSessions),
	})
}

// MultiSportSession is a sequence of activities of different sports
// recorded back to back.
type MultiSportSession struct {
	ID     *time.Time
	Sports []MultiActivity
	Notes  *string
}

func (m *MultiSportSession) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Id":         timeOpt(&m.ID),
		"FirstSport": elementList(&m.Sports),
		"NextSport":  elementList(&m.Sports),
		"Notes":      textOpt(&m.Notes),
	})
}

// MultiActivity is one leg of a multi-sport session, optionally
// preceded by the transition lap from the previous leg.
type MultiActivity struct {
	Transition *ActivityLap
	Activity   *Activity
}

func (m *MultiActivity) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Transition": elementOpt(&m.Transition),
		"Activity":   elementOpt(&m.Activity),
	})
}
