package parser

import (
	"fmt"

	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

// Parser walks a fully materialized token stream and builds an
// ast.Contract. One Parser instance is used for exactly one parse; it
// holds no state a second, unrelated parse could observe.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a Parser over tokens, as produced by lexer.Scanner.ScanTokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return tt == lexer.EOF
	}
	return p.peek().Type == tt
}

// checkAny reports whether the current token is any of the given types.
func (p *Parser) checkAny(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			return true
		}
	}
	return false
}

// match consumes and returns true if the current token is tt.
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// consume requires the current token to be tt, advancing past it. On
// mismatch it returns a KindUnexpectedToken error describing both what
// was expected and what was actually found, or a KindUnexpectedEOF error
// when input has already ended.
func (p *Parser) consume(tt lexer.TokenType, expected string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.unexpectedToken(expected)
}

func (p *Parser) unexpectedToken(expected string) error {
	tok := p.peek()
	if tok.Type == lexer.EOF {
		return &ast.Error{
			Kind:     ast.KindUnexpectedEOF,
			Message:  fmt.Sprintf("expected %s, reached end of input", expected),
			Position: tok.Position,
		}
	}
	return &ast.Error{
		Kind:     ast.KindUnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %q", expected, tok.Lexeme),
		Position: tok.Position,
	}
}

// consumeIdent consumes any identifier-class token (IDENT, or a keyword
// used loosely as a name is never valid — only IDENT qualifies).
func (p *Parser) consumeIdent(expected string) (string, error) {
	tok, err := p.consume(lexer.IDENT, expected)
	if err != nil {
		return "", err
	}
	return tok.Lexeme, nil
}
