package token

import "sort"

// Type identifies the lexical class of a token.
type Type int

const (
	Illegal Type = iota
	Whitespace
	Comment      // both //-style and /* */-style comments
	Preprocessor // a whole # directive line
	Ident
	Number
	String
	Char
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Operator

	KwIf
	KwElse
	KwFor
	KwWhile
	KwDo
	KwSwitch
	KwCase
	KwDefault
	KwBreak
	KwContinue
	KwReturn
	KwGoto
	KwStruct
	KwEnum
	KwUnion
	KwTypedef
	KwSizeof
)

var typeNames = map[Type]string{
	Illegal:      "illegal",
	Whitespace:   "whitespace",
	Comment:      "comment",
	Preprocessor: "preprocessor",
	Ident:        "ident",
	Number:       "number",
	String:       "string",
	Char:         "char",
	LParen:       "lparen",
	RParen:       "rparen",
	LBrace:       "lbrace",
	RBrace:       "rbrace",
	LBracket:     "lbracket",
	RBracket:     "rbracket",
	Semicolon:    "semicolon",
	Comma:        "comma",
	Operator:     "operator",
	KwIf:         "if",
	KwElse:       "else",
	KwFor:        "for",
	KwWhile:      "while",
	KwDo:         "do",
	KwSwitch:     "switch",
	KwCase:       "case",
	KwDefault:    "default",
	KwBreak:      "break",
	KwContinue:   "continue",
	KwReturn:     "return",
	KwGoto:       "goto",
	KwStruct:     "struct",
	KwEnum:       "enum",
	KwUnion:      "union",
	KwTypedef:    "typedef",
	KwSizeof:     "sizeof",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

var keywords = map[string]Type{
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"do":       KwDo,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"goto":     KwGoto,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"union":    KwUnion,
	"typedef":  KwTypedef,
	"sizeof":   KwSizeof,
}

// Lookup maps an identifier literal to its keyword type, or Ident
// when the literal is not a keyword.
func Lookup(ident string) Type {
	if kw, ok := keywords[ident]; ok {
		return kw
	}
	return Ident
}

// NoPair marks a bracket token that has no balanced partner in the stream.
const NoPair = -1

// Token is a single entry of a token stream. Bracket tokens carry the
// stream index of their balanced partner in Pair: an opener links to its
// closer and a closer back to its opener.
type Token struct {
	Type   Type
	Text   string
	Offset int // byte offset in the source
	Line   int // 1-based
	Column int // 1-based, in bytes
	Pair   int // index of the matching bracket, NoPair otherwise
}

func (t Token) IsWhitespace() bool { return t.Type == Whitespace }
func (t Token) IsComment() bool    { return t.Type == Comment }

// TypeSet is a set of token types, used as the exclusion set of
// directional stream searches and as an interest set by the dispatcher.
type TypeSet map[Type]struct{}

func NewTypeSet(types ...Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s.Add(t)
	}
	return s
}

func (s TypeSet) Add(t Type) { s[t] = struct{}{} }

func (s TypeSet) Has(t Type) bool {
	_, ok := s[t]
	return ok
}

// Types returns the members in ascending order.
func (s TypeSet) Types() []Type {
	out := make([]Type, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
