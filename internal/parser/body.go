package parser

import (
	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

// parseBody walks the sequence of field, transition, and procedure
// declarations that make up a contract's body, in source order.
// Procedures are recognized and skipped but never reported: only fields
// and transitions survive into the result.
func (p *Parser) parseBody() ([]ast.Field, []ast.Transition, error) {
	var fields []ast.Field
	var transitions []ast.Transition
	for {
		switch {
		case p.isAtEnd():
			return fields, transitions, nil

		case p.match(lexer.KW_FIELD):
			field, err := p.parseTopLevelField()
			if err != nil {
				return nil, nil, err
			}
			fields = append(fields, field)

		case p.match(lexer.KW_TRANSITION):
			transition, err := p.parseDeclHeader()
			if err != nil {
				return nil, nil, err
			}
			if err := p.skipDeclBody(); err != nil {
				return nil, nil, err
			}
			transitions = append(transitions, transition)

		case p.match(lexer.KW_PROCEDURE):
			if _, err := p.parseDeclHeader(); err != nil {
				return nil, nil, err
			}
			if err := p.skipDeclBody(); err != nil {
				return nil, nil, err
			}

		default:
			return fields, transitions, nil
		}
	}
}

// parseTopLevelField parses "<Ident> : <Type> = <expr>" with the leading
// 'field' keyword already consumed by the caller. The initializer
// expression is skipped, never parsed.
func (p *Parser) parseTopLevelField() (ast.Field, error) {
	name, err := p.consumeIdent("a field name")
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.consume(lexer.COLON, "':' after field name"); err != nil {
		return ast.Field{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.consume(lexer.EQUAL, "'=' before a field initializer"); err != nil {
		return ast.Field{}, err
	}
	if err := p.skipInitializer(); err != nil {
		return ast.Field{}, err
	}
	return ast.NewField(name, typ), nil
}

// parseDeclHeader parses "<Ident> [ '(' ParamList ')' ]" with the leading
// 'transition' or 'procedure' keyword already consumed. A bare name with
// no parentheses is treated as zero parameters.
func (p *Parser) parseDeclHeader() (ast.Transition, error) {
	name, err := p.consumeIdent("a name")
	if err != nil {
		return ast.Transition{}, err
	}
	if !p.check(lexer.LPAREN) {
		return ast.NewTransition(name), nil
	}
	params, err := p.parseParamList()
	if err != nil {
		return ast.Transition{}, err
	}
	return ast.NewTransitionWithParams(name, params), nil
}

// skipInitializer advances past a field initializer expression until it
// reaches the next top-level declaration keyword or end-of-input, which
// is itself a valid terminator for the last field in a file.
func (p *Parser) skipInitializer() error {
	depth := 0
	for {
		if p.isAtEnd() {
			return nil
		}
		if depth == 0 && p.checkAny(lexer.KW_FIELD, lexer.KW_TRANSITION, lexer.KW_PROCEDURE) {
			return nil
		}
		depth = p.bumpSkipDepth(depth)
	}
}

// skipDeclBody advances past a transition or procedure body up to and
// including its matching top-level 'end'.
func (p *Parser) skipDeclBody() error {
	depth := 0
	for {
		if p.isAtEnd() {
			return p.unexpectedToken("'end' to close the declaration body")
		}
		if depth == 0 && p.check(lexer.KW_END) {
			p.advance()
			return nil
		}
		depth = p.bumpSkipDepth(depth)
	}
}

// bumpSkipDepth advances exactly one token of a skipped expression and
// returns the balance depth after it. Openers are 'let', 'match', '(',
// '{', and 'ByStr20 with' (consumed as one unit); closers are 'in', 'end',
// ')', '}'. Every other token, including all of OPERATOR/INT/HEX/STRING/
// IDENT and keywords with no bearing on nesting, passes through inert.
// The opener and closer sets must stay exactly symmetric — an imbalance
// here is the main way a valid file would fail to parse.
func (p *Parser) bumpSkipDepth(depth int) int {
	tok := p.peek()
	switch tok.Type {
	case lexer.KW_LET, lexer.KW_MATCH, lexer.LPAREN, lexer.LBRACE:
		p.advance()
		return depth + 1

	case lexer.KW_BYSTRN:
		p.advance()
		if tok.ByStrN == 20 && p.check(lexer.KW_WITH) {
			p.advance()
			return depth + 1
		}
		return depth

	case lexer.KW_IN, lexer.KW_END, lexer.RPAREN, lexer.RBRACE:
		p.advance()
		if depth > 0 {
			return depth - 1
		}
		return depth

	default:
		p.advance()
		return depth
	}
}
