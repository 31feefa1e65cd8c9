package parser

import (
	"fmt"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// SyntaxError is a structured parse error with position information,
// kept separate from internal/diag.Diagnostic: the parser runs before
// any Session exists to collect diagnostics into.
type SyntaxError struct {
	Message string
	Code    string
	Pos     token.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

func newSyntaxError(pos token.Position, message, code string) *SyntaxError {
	return &SyntaxError{Message: message, Pos: pos, Code: code}
}

const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrMissingParen     = "E_MISSING_PAREN"
	ErrMissingBracket   = "E_MISSING_BRACKET"
	ErrMissingBrace     = "E_MISSING_BRACE"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrExpectedType     = "E_EXPECTED_TYPE"
	ErrInvalidSyntax    = "E_INVALID_SYNTAX"
)
