package xmlbuilder

import (
	"fmt"
	"regexp"
	"strings"
)

// Character classes for the Name production, per
// https://www.w3.org/TR/xml/#NT-NameStartChar. The supplementary plane
// range ([#x10000-#xEFFFF]) is deliberately absent: names are restricted
// to the Basic Multilingual Plane.
const (
	nameStartCharClass = `:A-Z_a-z\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}` +
		`\x{370}-\x{37D}\x{37F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}` +
		`\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}`
	nameCharClass = nameStartCharClass + `\-\.0-9\x{B7}\x{300}-\x{36F}\x{203F}-\x{2040}`
)

// Production sources, assembled the way the XML 1.0 EBNF writes them
// (https://www.w3.org/TR/xml/, section 2). Composite productions reuse the
// simpler ones by concatenation.
const (
	patSpace     = `[\x20\x09\x0D\x0A]+`
	patName      = `[` + nameStartCharClass + `][` + nameCharClass + `]*`
	patCharRef   = `&#[0-9]+;|&#x[0-9a-fA-F]+;`
	patEntityRef = `&` + patName + `;`
	patReference = `(?:` + patEntityRef + `)|(?:` + patCharRef + `)`

	// The bare value between the serializer's double quotes, so the quote
	// delimiters themselves are not part of the candidate.
	patAttValue = `(?:[^<&"]|` + patReference + `)*`

	// No "--" anywhere and no trailing "-".
	patCommentContent = `(?:[^-]|-[^-])*`

	// CharData and CData are EBNF difference productions. RE2 has no
	// lookahead, so each is expressed as an exclusion pattern: a full match
	// means the candidate is rejected.
	patCharDataExcl = `[^<&]*\]\]>[^<&]*`
	patCDataExcl    = `(?s).*\]\]>.*`

	patEncName    = `[A-Za-z][A-Za-z0-9._-]*`
	patVersionNum = `1\.[0-9]+`

	patPubIDLiteral  = `"[\x20\x0D\x0Aa-zA-Z0-9'()+,./:=?;!*#@$_%\-]*"|'[\x20\x0D\x0Aa-zA-Z0-9()+,./:=?;!*#@$_%\-]*'`
	patSystemLiteral = `"[^"]*"|'[^']*'`
	patExternalID    = `SYSTEM` + patSpace + `(?:` + patSystemLiteral + `)` +
		`|PUBLIC` + patSpace + `(?:` + patPubIDLiteral + `)` + patSpace + `(?:` + patSystemLiteral + `)`
)

// grammar is the fixed table of compiled XML 1.0 productions. Every pattern
// is anchored, so a match always covers the entire candidate string.
type grammar struct {
	Space          *regexp.Regexp
	NameStartChar  *regexp.Regexp
	NameChar       *regexp.Regexp
	Name           *regexp.Regexp
	CharRef        *regexp.Regexp
	EntityRef      *regexp.Regexp
	Reference      *regexp.Regexp
	AttValue       *regexp.Regexp
	CommentContent *regexp.Regexp
	CharDataExcl   *regexp.Regexp
	CDataExcl      *regexp.Regexp
	EncName        *regexp.Regexp
	VersionNum     *regexp.Regexp
	PubIDLiteral   *regexp.Regexp
	SystemLiteral  *regexp.Regexp
	ExternalID     *regexp.Regexp
}

// productions is computed once at package load and never mutated, so it is
// safe to share between goroutines.
var productions = grammar{
	Space:          full(patSpace),
	NameStartChar:  full(`[` + nameStartCharClass + `]`),
	NameChar:       full(`[` + nameCharClass + `]`),
	Name:           full(patName),
	CharRef:        full(patCharRef),
	EntityRef:      full(patEntityRef),
	Reference:      full(patReference),
	AttValue:       full(patAttValue),
	CommentContent: full(patCommentContent),
	CharDataExcl:   full(patCharDataExcl),
	CDataExcl:      full(patCDataExcl),
	EncName:        full(patEncName),
	VersionNum:     full(patVersionNum),
	PubIDLiteral:   full(patPubIDLiteral),
	SystemLiteral:  full(patSystemLiteral),
	ExternalID:     full(patExternalID),
}

func full(pat string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pat + `)$`)
}

// escaper applies the five XML entity substitutions in one pass. The pair
// order matters: ampersand is listed first so the references produced by
// the other substitutions are not themselves re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape replaces the five XML special characters & < > ' " with their
// entity references. The builder applies it to attribute values, text and
// comment content before validation; CDATA content is never escaped.
func Escape(s string) string {
	return escaper.Replace(s)
}

// CheckName ensures a string is a complete match for the Name production:
// https://www.w3.org/TR/xml/#NT-Name. The empty string is not a Name.
// Supplementary plane characters are rejected.
func CheckName(name string) error {
	if !productions.Name.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// CheckEncoding validates the value of a declaration's encoding="..."
// attribute based on the following production rule:
//
//	[A-Za-z] ([A-Za-z0-9._] | '-')*
func CheckEncoding(encoding string) error {
	if !productions.EncName.MatchString(encoding) {
		return fmt.Errorf("%w: encoding %q", ErrInvalidValue, encoding)
	}
	return nil
}

func checkVersion(version string) error {
	if !productions.VersionNum.MatchString(version) {
		return fmt.Errorf("%w: version %q", ErrInvalidValue, version)
	}
	return nil
}

// checkAttValue validates an already-escaped attribute value. Raw specials
// never reach it from the builder; rejections come from naked ampersands or
// angle brackets in hand-assembled values.
func checkAttValue(escaped string) error {
	if !productions.AttValue.MatchString(escaped) {
		return fmt.Errorf("%w: attribute value %q", ErrInvalidValue, escaped)
	}
	return nil
}

// checkCharData validates already-escaped text. The escaper rewrites ">",
// so the "]]>" exclusion cannot fire on builder input; it is kept for
// values assembled outside the escaper.
func checkCharData(escaped string) error {
	if productions.CharDataExcl.MatchString(escaped) {
		return fmt.Errorf("%w: text %q", ErrInvalidValue, escaped)
	}
	return nil
}

func checkCDataContent(value string) error {
	if productions.CDataExcl.MatchString(value) {
		return fmt.Errorf("%w: cdata %q may not contain \"]]>\"", ErrInvalidValue, value)
	}
	return nil
}

func checkCommentContent(escaped string) error {
	if !productions.CommentContent.MatchString(escaped) {
		return fmt.Errorf("%w: comment %q", ErrInvalidValue, escaped)
	}
	return nil
}

func checkExternalID(s string) error {
	if !productions.ExternalID.MatchString(s) {
		return fmt.Errorf("%w: external ID %q", ErrInvalidValue, s)
	}
	return nil
}
