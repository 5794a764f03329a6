package tcx

import (
	"strconv"
	"time"

	"github.com/muktihari/xmltokenizer"
)

// Scalar conversion layer: element text into numbers, booleans,
// RFC3339 timestamps and closed enums. Numeric and boolean failures
// surface as *strconv.NumError, timestamps as *time.ParseError, both
// carrying the offending text.

func parseUint8(b []byte) (uint8, error) {
	v, err := strconv.ParseUint(string(b), 10, 8)
	return uint8(v), err
}

func parseUint16(b []byte) (uint16, error) {
	v, err := strconv.ParseUint(string(b), 10, 16)
	return uint16(v), err
}

func parseUint32(b []byte) (uint32, error) {
	v, err := strconv.ParseUint(string(b), 10, 32)
	return uint32(v), err
}

func parseFloat64(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}

func parseBool(b []byte) (bool, error) {
	return strconv.ParseBool(string(b))
}

// parseTime requires strict RFC3339, no lenient formats.
func parseTime(b []byte) (time.Time, error) {
	return time.Parse(time.RFC3339, string(b))
}

// parseDate parses an xsd:date, used by folder week start days.
func parseDate(b []byte) (time.Time, error) {
	return time.Parse(time.DateOnly, string(b))
}

func text(dst *string) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		*dst = string(token.Data)
		return nil
	}
}

func textOpt(dst **string) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		s := string(token.Data)
		*dst = &s
		return nil
	}
}

func uint8Value(dst *uint8) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseUint8(token.Data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func uint8Opt(dst **uint8) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseUint8(token.Data)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func uint16Value(dst *uint16) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseUint16(token.Data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func uint16Opt(dst **uint16) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseUint16(token.Data)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func uint32Value(dst *uint32) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseUint32(token.Data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func float64Value(dst *float64) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseFloat64(token.Data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func float64Opt(dst **float64) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseFloat64(token.Data)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func timeValue(dst *time.Time) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseTime(token.Data)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func timeOpt(dst **time.Time) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parseTime(token.Data)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func enumValue[E any](dst *E, parse func(string) (E, error)) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parse(string(token.Data))
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func enumOpt[E any](dst **E, parse func(string) (E, error)) elementFunc {
	return func(_ *xmltokenizer.Tokenizer, token *xmltokenizer.Token) error {
		v, err := parse(string(token.Data))
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
