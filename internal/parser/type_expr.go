package parser

import (
	"fmt"
	"unicode"

	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

// parseType is the recursive-descent core of the whole package: it
// parses one type expression.
//
//	Type        := AtomType (TypeArg*)
//	AtomType    := PrimType | AddressType | '(' Type ')' | CustomName
//	TypeArg     := AtomType
//
// Only four keywords are applicative combinators, each with a fixed
// arity known from the keyword alone: Map takes two arguments, List and
// Option take one, Pair takes two. Every other atom — a primitive,
// ByStr/ByStrN, an address type, a parenthesized type, or a custom name
// — consumes nothing further, so the recursion bottoms out naturally
// instead of needing an explicit lookahead-based stop set.
//
// Each combinator argument is parsed by parseType itself, not restricted
// to an atom, so a nested combinator argument is accepted with or
// without parentheses: "Map ByStr20 Map ByStr20 Uint128" parses the same
// as "Map ByStr20 (Map ByStr20 Uint128)".
func (p *Parser) parseType() (ast.Type, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.KW_MAP:
		p.advance()
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.MapType{Key: key, Value: value}, nil

	case lexer.KW_LIST:
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.ListType{Elem: elem}, nil

	case lexer.KW_OPTION:
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.OptionType{Inner: inner}, nil

	case lexer.KW_PAIR:
		p.advance()
		first, err := p.parseType()
		if err != nil {
			return nil, err
		}
		second, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.PairType{First: first, Second: second}, nil

	case lexer.KW_BYSTR:
		p.advance()
		return ast.ByStrType{}, nil

	case lexer.KW_BYSTRN:
		return p.parseByStrN()

	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RPAREN, "')' to close parenthesized type"); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.IDENT:
		return p.parseNamedType()

	default:
		return nil, p.unexpectedTypeToken()
	}
}

// parseByStrN handles the ByStr20-with-refinement special case: a bare
// ByStrN atom becomes an address type only when N is exactly 20 and the
// next token is "with". Every other ByStrN length is a plain sized byte
// string, even when immediately followed by "with" — that combination is
// left for the caller to reject, since "with" cannot otherwise continue
// whatever production asked for this type.
func (p *Parser) parseByStrN() (ast.Type, error) {
	tok := p.advance()
	n := tok.ByStrN
	if n < 1 {
		return nil, &ast.Error{
			Kind:     ast.KindUnknownType,
			Message:  fmt.Sprintf("ByStr%d: length must be a positive integer", n),
			Position: tok.Position,
		}
	}
	if n == 20 && p.check(lexer.KW_WITH) {
		p.advance()
		kind, err := p.parseAddressRefinement()
		if err != nil {
			return nil, err
		}
		return ast.AddressType{Kind: kind}, nil
	}
	return ast.ByStrNType{N: n}, nil
}

// parseAddressRefinement parses AddressRefine 'end', with the leading
// "with" already consumed.
//
//	AddressRefine := 'library' | 'contract' ( FieldDecl (',' FieldDecl)* )?
func (p *Parser) parseAddressRefinement() (ast.AddressKind, error) {
	switch {
	case p.match(lexer.KW_LIBRARY):
		if _, err := p.consume(lexer.KW_END, "'end' to close a library address refinement"); err != nil {
			return nil, err
		}
		return ast.LibraryRefinement{}, nil

	case p.match(lexer.KW_CONTRACT):
		var fields []ast.Field
		if !p.check(lexer.KW_END) {
			for {
				field, err := p.parseFieldDecl()
				if err != nil {
					return nil, err
				}
				fields = append(fields, field)
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		if _, err := p.consume(lexer.KW_END, "'end' to close a contract address refinement"); err != nil {
			return nil, err
		}
		return ast.ContractRefinement{Fields: fields}, nil

	default:
		tok := p.peek()
		return nil, &ast.Error{
			Kind:     ast.KindMalformedAddressRefinement,
			Message:  fmt.Sprintf("expected 'library' or 'contract' after 'with', found %q", tok.Lexeme),
			Position: tok.Position,
		}
	}
}

// parseFieldDecl parses "field <ident> : <Type>", used both for contract
// state fields and, recursively, for the fields nested inside a contract
// address refinement.
func (p *Parser) parseFieldDecl() (ast.Field, error) {
	if _, err := p.consume(lexer.KW_FIELD, "'field'"); err != nil {
		return ast.Field{}, err
	}
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
	return ast.NewField(name, typ), nil
}

// parseNamedType resolves an IDENT token in type position: one of the
// thirteen fixed primitive names, or an unknown capitalized identifier
// captured verbatim as a CustomType.
func (p *Parser) parseNamedType() (ast.Type, error) {
	tok := p.advance()
	if prim, ok := ast.PrimitiveNamed(tok.Lexeme); ok {
		return prim, nil
	}
	if !isCapitalized(tok.Lexeme) {
		return nil, &ast.Error{
			Kind:     ast.KindUnknownType,
			Message:  fmt.Sprintf("expected a type, found identifier %q", tok.Lexeme),
			Position: tok.Position,
		}
	}
	return ast.CustomType{Name: tok.Lexeme}, nil
}

func isCapitalized(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func (p *Parser) unexpectedTypeToken() error {
	tok := p.peek()
	if tok.Type == lexer.EOF {
		return &ast.Error{
			Kind:     ast.KindUnexpectedEOF,
			Message:  "expected a type, reached end of input",
			Position: tok.Position,
		}
	}
	return &ast.Error{
		Kind:     ast.KindUnknownType,
		Message:  fmt.Sprintf("expected a type, found %q", tok.Lexeme),
		Position: tok.Position,
	}
}
