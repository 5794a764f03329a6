package tcx

import (
	"fmt"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// Folders is the folder hierarchy a device or application uses to
// organize history, workouts and courses.
type Folders struct {
	History  *History
	Workouts *Workouts
	Courses  *Courses
}

func (f *Folders) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"History":  elementOpt(&f.History),
		"Workouts": elementOpt(&f.Workouts),
		"Courses":  elementOpt(&f.Courses),
	})
}

// History groups recorded activities by sport.
type History struct {
	Running    *HistoryFolder
	Biking     *HistoryFolder
	Other      *HistoryFolder
	MultiSport *MultiSportFolder
}

func (h *History) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Running":    elementOpt(&h.Running),
		"Biking":     elementOpt(&h.Biking),
		"Other":      elementOpt(&h.Other),
		"MultiSport": elementOpt(&h.MultiSport),
	})
}

// HistoryFolder refers to recorded activities by their id.
type HistoryFolder struct {
	Name         *string
	Folders      []HistoryFolder
	ActivityRefs []time.Time
	Weeks        []Week
	Notes        *string
}

func (f *HistoryFolder) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	readFolderName(se, &f.Name)
	return readElement(tok, se, elementTable{
		"Folder":      elementList(&f.Folders),
		"ActivityRef": timeRefList(&f.ActivityRefs),
		"Week":        elementList(&f.Weeks),
		"Notes":       textOpt(&f.Notes),
	})
}

// MultiSportFolder refers to recorded multi-sport sessions by their
// id.
type MultiSportFolder struct {
	Name                   *string
	Folders                []MultiSportFolder
	MultisportActivityRefs []time.Time
	Weeks                  []Week
	Notes                  *string
}

func (f *MultiSportFolder) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	readFolderName(se, &f.Name)
	return readElement(tok, se, elementTable{
		"Folder":                elementList(&f.Folders),
		"MultisportActivityRef": timeRefList(&f.MultisportActivityRefs),
		"Week":                  elementList(&f.Weeks),
		"Notes":                 textOpt(&f.Notes),
	})
}

// Workouts groups planned workouts by sport.
type Workouts struct {
	Running *WorkoutFolder
	Biking  *WorkoutFolder
	Other   *WorkoutFolder
}

func (w *Workouts) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Running": elementOpt(&w.Running),
		"Biking":  elementOpt(&w.Biking),
		"Other":   elementOpt(&w.Other),
	})
}

// WorkoutFolder refers to planned workouts by name.
type WorkoutFolder struct {
	Name            *string
	Folders         []WorkoutFolder
	WorkoutNameRefs []string
}

func (f *WorkoutFolder) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	readFolderName(se, &f.Name)
	return readElement(tok, se, elementTable{
		"Folder":         elementList(&f.Folders),
		"WorkoutNameRef": nameRefList(&f.WorkoutNameRefs),
	})
}

// Courses holds the course folder tree.
type Courses struct {
	CourseFolder *CourseFolder
}

func (c *Courses) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"CourseFolder": elementOpt(&c.CourseFolder),
	})
}

// CourseFolder refers to saved courses by name.
type CourseFolder struct {
	Name           *string
	Folders        []CourseFolder
	CourseNameRefs []string
	Notes          *string
}

func (f *CourseFolder) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	readFolderName(se, &f.Name)
	return readElement(tok, se, elementTable{
		"Folder":        elementList(&f.Folders),
		"CourseNameRef": nameRefList(&f.CourseNameRefs),
		"Notes":         textOpt(&f.Notes),
	})
}

// Week is written out only when its notes are present. StartDay is
// an xsd:date attribute.
type Week struct {
	StartDay *time.Time
	Notes    *string
}

func (w *Week) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "StartDay" {
			d, err := parseDate(attr.Value)
			if err != nil {
				return fmt.Errorf("StartDay: %w", err)
			}
			w.StartDay = &d
		}
	}
	return readElement(tok, se, elementTable{
		"Notes": textOpt(&w.Notes),
	})
}

// readFolderName picks up the Name attribute folders carry.
func readFolderName(se *xmltokenizer.Token, dst **string) {
	for i := range se.Attrs {
		attr := &se.Attrs[i]
		if string(attr.Name.Local) == "Name" {
			name := string(attr.Value)
			*dst = &name
		}
	}
}

// timeRefList reads a reference element whose Id child is a
// timestamp, appending it to dst.
func timeRefList(dst *[]time.Time) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		var t time.Time
		if err := readElement(tok, se, elementTable{"Id": timeValue(&t)}); err != nil {
			return err
		}
		*dst = append(*dst, t)
		return nil
	}
}

// nameRefList reads a reference element whose Id child is a name,
// appending it to dst.
func nameRefList(dst *[]string) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		var name string
		if err := readElement(tok, se, elementTable{"Id": text(&name)}); err != nil {
			return err
		}
		*dst = append(*dst, name)
		return nil
	}
}
