package parser

import (
	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

// Parse walks a fully materialized token stream and produces the
// declarative surface of the single contract it declares. The first
// error aborts the parse; no partial *ast.Contract is ever returned
// alongside a non-nil error.
func Parse(tokens []lexer.Token) (*ast.Contract, error) {
	p := New(tokens)
	return p.parseContract()
}

// parseContract drives the fixed top-level skeleton: an optional version
// line, optional imports, an optional library block (skipped), the
// contract header, and the field/transition/procedure body.
func (p *Parser) parseContract() (*ast.Contract, error) {
	if err := p.skipVersionLine(); err != nil {
		return nil, err
	}
	if err := p.skipImports(); err != nil {
		return nil, err
	}
	if err := p.skipLibraryBlock(); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.KW_CONTRACT, "'contract'"); err != nil {
		return nil, err
	}
	name, err := p.consumeIdent("a contract name")
	if err != nil {
		return nil, err
	}
	var initParams []ast.Field
	if p.check(lexer.LPAREN) {
		initParams, err = p.parseParamList()
		if err != nil {
			return nil, err
		}
	}

	fields, transitions, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, p.unexpectedToken("end of input")
	}

	return &ast.Contract{
		Name:        name,
		InitParams:  initParams,
		Fields:      fields,
		Transitions: transitions,
	}, nil
}

// skipVersionLine discards "scilla_version <int>" when present.
func (p *Parser) skipVersionLine() error {
	if !p.match(lexer.KW_SCILLA_VERSION) {
		return nil
	}
	_, err := p.consume(lexer.INT, "a version number after 'scilla_version'")
	return err
}

// skipImports discards a single "import <ident>+" clause when present.
func (p *Parser) skipImports() error {
	if !p.match(lexer.KW_IMPORT) {
		return nil
	}
	if _, err := p.consumeIdent("an imported library name"); err != nil {
		return err
	}
	for p.check(lexer.IDENT) {
		p.advance()
	}
	return nil
}

// skipLibraryBlock discards an optional "library <Ident> <decls>" block.
// It stops right before the top-level 'contract' keyword rather than
// consuming it, so parseContract's own consume(KW_CONTRACT, ...) call
// sees it. Library declarations are walked with the same balanced
// skip-scanner used for declaration bodies so that a 'contract' keyword
// nested inside, say, a let-binding's ByStr20-with-contract type
// annotation is never mistaken for the terminator. A 'let' at depth zero
// starts a top-level library declaration, which has no closing 'in', so
// it is not counted as an opener.
func (p *Parser) skipLibraryBlock() error {
	if !p.match(lexer.KW_LIBRARY) {
		return nil
	}
	if _, err := p.consumeIdent("a library name"); err != nil {
		return err
	}
	depth := 0
	for {
		if p.isAtEnd() {
			return p.unexpectedToken("'contract'")
		}
		if depth == 0 && p.check(lexer.KW_CONTRACT) {
			return nil
		}
		if depth == 0 && p.check(lexer.KW_LET) {
			p.advance()
			continue
		}
		depth = p.bumpSkipDepth(depth)
	}
}

// parseParamList parses a possibly empty, comma-separated "(Ident : Type,
// ...)" list, used for both the contract header and transition/procedure
// headers.
func (p *Parser) parseParamList() ([]ast.Field, error) {
	if _, err := p.consume(lexer.LPAREN, "'(' to start a parameter list"); err != nil {
		return nil, err
	}
	var params []ast.Field
	if !p.check(lexer.RPAREN) {
		for {
			name, err := p.consumeIdent("a parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.COLON, "':' after parameter name"); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewField(name, typ))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RPAREN, "')' to close a parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}
