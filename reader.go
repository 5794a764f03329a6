package tcx

import (
	"fmt"

	"github.com/muktihari/xmltokenizer"
)

// elementFunc populates a single field from the start token of its
// element. token carries the element's attributes and any chardata;
// composite handlers keep reading from tok until their own end tag.
type elementFunc func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error

// elementTable maps a child element's local name to the handler that
// populates the corresponding field.
type elementTable map[string]elementFunc

// tokenReader is implemented by every entity of the domain model.
// se is the entity's own start token, already consumed from tok.
type tokenReader interface {
	readFrom(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error
}

// readElement consumes tokens until the end element matching se,
// dispatching every known child start element to its handler in
// table. Unknown start, end and text events are skipped, keeping the
// reader forward-compatible with elements it does not know about.
// The first error encountered is returned, wrapped with the child
// element's name.
func readElement(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token, table elementTable) error {
	if se.SelfClosing {
		return nil
	}
	for {
		token, err := tok.Token()
		if err != nil {
			return err
		}
		if token.IsEndElementOf(se) {
			return nil
		}
		if token.IsEndElement {
			continue
		}
		name := string(token.Name.Local)
		fn, ok := table[name]
		if !ok {
			continue
		}
		if err = fn(tok, &token); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
}

// skipElement consumes tokens until the end element matching se,
// discarding everything in between.
func skipElement(tok *xmltokenizer.Tokenizer, se *xmltokenizer.Token) error {
	if se.SelfClosing {
		return nil
	}
	for {
		token, err := tok.Token()
		if err != nil {
			return err
		}
		if token.IsEndElementOf(se) {
			return nil
		}
	}
}

// resolveType returns the value of the xsi:type attribute that
// selects the concrete shape of a polymorphic element, or
// ErrTypeNotDefined when the attribute is absent.
func resolveType(token *xmltokenizer.Token) (string, error) {
	for i := range token.Attrs {
		attr := &token.Attrs[i]
		if string(attr.Name.Full) == "xsi:type" {
			return string(attr.Value), nil
		}
	}
	return "", ErrTypeNotDefined
}

// element recurses into a mandatory composite child.
func element(r tokenReader) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		return r.readFrom(tok, se)
	}
}

// elementOpt recurses into an optional composite child, allocating
// it on first sight.
func elementOpt[T any, PT interface {
	*T
	tokenReader
}](dst **T) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v := new(T)
		se := xmltokenizer.GetToken().Copy(*token)
		err := PT(v).readFrom(tok, se)
		xmltokenizer.PutToken(se)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// elementList recurses into a repeated composite child, appending in
// document order.
func elementList[T any, PT interface {
	*T
	tokenReader
}](dst *[]T) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		var v T
		se := xmltokenizer.GetToken().Copy(*token)
		err := PT(&v).readFrom(tok, se)
		xmltokenizer.PutToken(se)
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
		return nil
	}
}

// within scopes inner to a single named child of the matched
// element, skipping everything else. TCX nests several readings one
// level deeper than their field, e.g. AverageHeartRateBpm/Value and
// Extensions/TPX.
func within(child string, inner elementFunc) elementFunc {
	return func(tok *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		se := xmltokenizer.GetToken().Copy(*token)
		defer xmltokenizer.PutToken(se)
		return readElement(tok, se, elementTable{child: inner})
	}
}

// valueOf handles elements that wrap their reading inside a generic
// Value child, used for heart-rate fields.
func valueOf(inner elementFunc) elementFunc {
	return within("Value", inner)
}
