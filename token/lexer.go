package token

// Lexer scans C-family source bytes into a Stream. It keeps every byte
// of the input: whitespace runs and comments become tokens of their own,
// so the concatenation of all token texts reproduces the source exactly.
type Lexer struct {
	src    []byte
	pos    int
	line   int
	col    int
	tokens []Token
}

// NewLexer returns a new Lexer over the given source.
func NewLexer(src []byte) *Lexer {
	return &Lexer{
		src:    src,
		line:   1,
		col:    1,
		tokens: make([]Token, 0, len(src)/4),
	}
}

// Tokenize consumes the whole input and returns the linked token stream.
func (l *Lexer) Tokenize() *Stream {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isSpace(c):
			l.lexWhitespace()
		case c == '/' && l.peek(1) == '/':
			l.lexLineComment()
		case c == '/' && l.peek(1) == '*':
			l.lexBlockComment()
		case c == '#':
			l.lexPreprocessor()
		case c == '"':
			l.lexString('"', String)
		case c == '\'':
			l.lexString('\'', Char)
		case isDigit(c):
			l.lexNumber()
		case isIdentStart(c):
			l.lexIdent()
		default:
			l.lexPunct()
		}
	}
	linkBrackets(l.tokens)
	return NewStream(l.tokens)
}

func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) emit(typ Type, start, startLine, startCol int) {
	l.tokens = append(l.tokens, Token{
		Type:   typ,
		Text:   string(l.src[start:l.pos]),
		Offset: start,
		Line:   startLine,
		Column: startCol,
		Pair:   NoPair,
	})
}

// advance moves past the current byte, tracking line and column.
func (l *Lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) lexWhitespace() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.advance()
	}
	l.emit(Whitespace, start, line, col)
}

func (l *Lexer) lexLineComment() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance()
	}
	l.emit(Comment, start, line, col)
}

func (l *Lexer) lexBlockComment() {
	start, line, col := l.pos, l.line, l.col
	l.advance() // '/'
	l.advance() // '*'
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	l.emit(Comment, start, line, col)
}

// lexPreprocessor consumes a # directive up to the end of the line,
// honoring backslash continuations.
func (l *Lexer) lexPreprocessor() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) {
		if l.src[l.pos] == '\\' && l.peek(1) == '\n' {
			l.advance()
			l.advance()
			continue
		}
		if l.src[l.pos] == '\n' {
			break
		}
		l.advance()
	}
	l.emit(Preprocessor, start, line, col)
}

func (l *Lexer) lexString(quote byte, typ Type) {
	start, line, col := l.pos, l.line, l.col
	l.advance() // opening quote
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if c == quote || c == '\n' {
			break
		}
	}
	l.emit(typ, start, line, col)
}

func (l *Lexer) lexNumber() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) && isNumberByte(l.src[l.pos]) {
		l.advance()
	}
	l.emit(Number, start, line, col)
}

func (l *Lexer) lexIdent() {
	start, line, col := l.pos, l.line, l.col
	for l.pos < len(l.src) && isIdentByte(l.src[l.pos]) {
		l.advance()
	}
	l.emit(Lookup(string(l.src[start:l.pos])), start, line, col)
}

var punctTypes = map[byte]Type{
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
	';': Semicolon,
	',': Comma,
}

func (l *Lexer) lexPunct() {
	start, line, col := l.pos, l.line, l.col
	c := l.src[l.pos]
	if typ, ok := punctTypes[c]; ok {
		l.advance()
		l.emit(typ, start, line, col)
		return
	}
	if isOperator(c) {
		// maximal munch, but never swallow the start of a comment
		for l.pos < len(l.src) && isOperator(l.src[l.pos]) {
			if l.src[l.pos] == '/' && (l.peek(1) == '/' || l.peek(1) == '*') {
				break
			}
			l.advance()
		}
		if l.pos > start {
			l.emit(Operator, start, line, col)
			return
		}
	}
	l.advance()
	l.emit(Illegal, start, line, col)
}

// linkBrackets fills Pair for balanced (), {} and [] tokens. Each bracket
// class keeps its own stack; unbalanced tokens stay at NoPair.
func linkBrackets(tokens []Token) {
	openers := map[Type]Type{RParen: LParen, RBrace: LBrace, RBracket: LBracket}
	stacks := make(map[Type][]int, 3)
	for i, tok := range tokens {
		switch tok.Type {
		case LParen, LBrace, LBracket:
			stacks[tok.Type] = append(stacks[tok.Type], i)
		case RParen, RBrace, RBracket:
			opener := openers[tok.Type]
			stack := stacks[opener]
			if len(stack) == 0 {
				continue
			}
			j := stack[len(stack)-1]
			stacks[opener] = stack[:len(stack)-1]
			tokens[i].Pair = j
			tokens[j].Pair = i
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool { return isIdentStart(c) || isDigit(c) }

// isNumberByte accepts everything that may continue a numeric literal:
// digits, hex letters, radix prefixes, exponents, dots and suffixes.
func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'x' || c == 'X' ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		c == 'u' || c == 'U' || c == 'l' || c == 'L'
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', '?', ':', '.':
		return true
	}
	return false
}
