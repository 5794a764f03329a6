// Package tcx reads Training Center XML (TCX), the fitness-activity
// interchange format exported by watches, head units and mobile
// apps, into a typed TrainingCenterDatabase.
//
// The reader streams over github.com/muktihari/xmltokenizer events
// and never buffers the whole document. Elements it does not know
// about are skipped, so files from newer devices still read. Field
// constraints (value ranges, string shapes) are checked separately
// with the Validate methods once a tree is built.
package tcx

import (
	"io"

	"github.com/muktihari/xmltokenizer"
)

// Read reads a TCX document from r into a TrainingCenterDatabase,
// returning the first error encountered: malformed markup, an
// unparsable scalar, an unknown enum literal or a polymorphic
// element missing its xsi:type attribute.
func Read(r io.Reader) (TrainingCenterDatabase, error) {
	tok := xmltokenizer.New(r)
	var db TrainingCenterDatabase
	for {
		token, err := tok.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return db, err
		}
		if token.IsEndElement {
			continue
		}
		if string(token.Name.Local) == "TrainingCenterDatabase" {
			se := xmltokenizer.GetToken().Copy(token)
			err = db.readFrom(tok, se)
			xmltokenizer.PutToken(se)
			if err != nil {
				return db, err
			}
			break
		}
	}
	return db, nil
}
