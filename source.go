package tcx

import (
	"github.com/muktihari/xmltokenizer"
)

// Source identifies where a piece of data originated: a PC or
// mobile software application, or a GPS device. Concrete types are
// *Application and *Device, selected by the xsi:type attribute of
// the enclosing Author or Creator element.
type Source interface {
	isSource()
}

// sourceOf resolves the xsi:type attribute of a polymorphic Author
// or Creator element and recurses into the matching reader. An
// unrecognized type skips the element and leaves the field unset; a
// missing type attribute is an error.
func sourceOf(dst *Source) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		kind, err := resolveType(token)
		if err != nil {
			return err
		}
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		switch kind {
		case "Application_t":
			app := new(Application)
			if err := app.readFrom(tok, se); err != nil {
				return err
			}
			*dst = app
		case "Device_t":
			dev := new(Device)
			if err := dev.readFrom(tok, se); err != nil {
				return err
			}
			*dst = dev
		default:
			return skipElement(tok, se)
		}
		return nil
	}
}

// Application identifies a PC or mobile software application.
type Application struct {
	Name  string
	Build Build
	// LangID is the two character ISO 693-1 language id that
	// identifies the installed language of this application.
	LangID string `validate:"len=2"`
	// PartNumber is the formatted XXX-XXXXX-XX Garmin part number
	// of a PC application.
	PartNumber string `validate:"partnumber"`
}

func (*Application) isSource() {}

func (a *Application) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Name":       text(&a.Name),
		"Build":      element(&a.Build),
		"LangID":     text(&a.LangID),
		"PartNumber": text(&a.PartNumber),
	})
}

// Device identifies the originating GPS device that tracked a run,
// or the type of device capable of handling the data for loading.
type Device struct {
	Name      string
	UnitID    uint32
	ProductID uint16
	Version   Version
}

func (*Device) isSource() {}

func (d *Device) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Name":      text(&d.Name),
		"UnitId":    uint32Value(&d.UnitID),
		"ProductID": uint16Value(&d.ProductID),
		"Version":   element(&d.Version),
	})
}

// Build holds information about an application build.
type Build struct {
	Version Version
	Type    *BuildType
	// Time is the date and time the application was built. It is
	// not a timestamp in the schema because the string is emitted
	// by the compiler and has no fixed format.
	Time *string
	// Builder is the login name of the engineer who created this
	// build.
	Builder *string
}

func (b *Build) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"Version": element(&b.Version),
		"Type":    enumOpt(&b.Type, ParseBuildType),
		"Time":    textOpt(&b.Time),
		"Build":   textOpt(&b.Builder),
	})
}

// Version is a dotted software version, build parts optional.
type Version struct {
	VersionMajor uint16
	VersionMinor uint16
	BuildMajor   *uint16
	BuildMinor   *uint16
}

func (v *Version) readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	return readElement(tok, se, elementTable{
		"VersionMajor": uint16Value(&v.VersionMajor),
		"VersionMinor": uint16Value(&v.VersionMinor),
		"BuildMajor":   uint16Opt(&v.BuildMajor),
		"BuildMinor":   uint16Opt(&v.BuildMinor),
	})
}
