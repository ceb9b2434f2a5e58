package core

import "strings"

// Keyword is a descriptor statement keyword.
type Keyword uint8

// Keywords understood by the parser. Any other leading token is skipped.
const (
	KeywordUnknown Keyword = iota
	KeywordDset
	KeywordTitle
	KeywordOptions
	KeywordUndef
	KeywordXdef
	KeywordYdef
	KeywordZdef
	KeywordTdef
	KeywordVars
)

// LookupKeyword maps a leading token to its keyword, case-insensitively.
func LookupKeyword(token string) Keyword {
	switch strings.ToLower(token) {
	case "dset":
		return KeywordDset
	case "title":
		return KeywordTitle
	case "options":
		return KeywordOptions
	case "undef":
		return KeywordUndef
	case "xdef":
		return KeywordXdef
	case "ydef":
		return KeywordYdef
	case "zdef":
		return KeywordZdef
	case "tdef":
		return KeywordTdef
	case "vars":
		return KeywordVars
	default:
		return KeywordUnknown
	}
}

// String returns the keyword as written in a descriptor.
func (k Keyword) String() string {
	switch k {
	case KeywordDset:
		return "dset"
	case KeywordTitle:
		return "title"
	case KeywordOptions:
		return "options"
	case KeywordUndef:
		return "undef"
	case KeywordXdef:
		return "xdef"
	case KeywordYdef:
		return "ydef"
	case KeywordZdef:
		return "zdef"
	case KeywordTdef:
		return "tdef"
	case KeywordVars:
		return "vars"
	default:
		return "unknown"
	}
}
