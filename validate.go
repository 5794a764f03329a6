package tcx

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// partNumberPattern is the shape of a Garmin part number,
// XXX-XXXXX-XX. Compiled once, on first use.
var partNumberPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[\p{Lu}\d]{3}-[\p{Lu}\d]{5}-[\p{Lu}\d]{2}$`)
})

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("partnumber", func(fl validator.FieldLevel) bool {
		return partNumberPattern().MatchString(fl.Field().String())
	})
	return v
})

// Validate checks the field constraints of an already-built value:
// LangID must be exactly two characters and PartNumber must match
// the XXX-XXXXX-XX shape. Violations are collected per field as
// validator.ValidationErrors; they are never raised during Read.
func (a *Application) Validate() error { return validate().Struct(a) }

// Validate checks that latitude is within [-90, 90] and longitude
// within [-180, 180].
func (p *Position) Validate() error { return validate().Struct(p) }

// Validate checks that the plan name, when present, is between 1
// and 15 characters.
func (p *Plan) Validate() error { return validate().Struct(p) }

// Validate checks the lap's heart-rate and cadence constraints and
// those of its track points.
func (l *ActivityLap) Validate() error { return validate().Struct(l) }

// Validate checks the course lap's cadence constraint.
func (l *CourseLap) Validate() error { return validate().Struct(l) }

// Validate checks the track point's cadence and position
// constraints.
func (p *TrackPoint) Validate() error { return validate().Struct(p) }

// Validate checks the extension's cadence constraint.
func (e *TrackPointExtension) Validate() error { return validate().Struct(e) }

// Validate checks the extension's cadence constraints.
func (e *LapExtension) Validate() error { return validate().Struct(e) }
