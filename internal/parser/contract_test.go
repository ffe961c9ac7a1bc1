package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
)

func parseSource(t *testing.T, source string) (*ast.Contract, error) {
	t.Helper()
	s := lexer.New(source)
	tokens := s.ScanTokens()
	require.Empty(t, s.Errors(), "unexpected scan errors: %v", s.Errors())
	return Parse(tokens)
}

func TestHelloWorldContract(t *testing.T) {
	c, err := parseSource(t, "contract HelloWorld")
	require.NoError(t, err)
	want := &ast.Contract{Name: "HelloWorld"}
	assert.True(t, want.Equal(c))
}

func TestEmptyContractWithParens(t *testing.T) {
	c, err := parseSource(t, "contract Empty ()")
	require.NoError(t, err)
	want := &ast.Contract{Name: "Empty"}
	assert.True(t, want.Equal(c))
}

func TestVersionLineAndImportsAreDiscarded(t *testing.T) {
	c, err := parseSource(t, `
		scilla_version 0
		import BoolUtils IntUtils
		contract HelloWorld
	`)
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld", c.Name)
}

func TestLibraryBlockIsSkipped(t *testing.T) {
	c, err := parseSource(t, `
		library HelloWorldLib

		let one_msg =
			fun (msg : Message) =>
				let nil_msg = Nil {Message} in
				Cons {Message} msg nil_msg

		contract HelloWorld ()
	`)
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld", c.Name)
}

func TestNestedMapFieldWithInitializer(t *testing.T) {
	src := `
		contract Auction ()

		field f : Map ByStr20 (Map ByStr20 Uint128) = Emp ByStr20 (Map ByStr20 Uint128)
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.Fields, 1)
	want := ast.MapType{Key: ast.ByStrNType{N: 20}, Value: ast.MapType{Key: ast.ByStrNType{N: 20}, Value: ast.Uint128}}
	assert.Equal(t, "f", c.Fields[0].Name)
	assert.True(t, want.Equal(c.Fields[0].Type))
}

func TestAddressWithContractInitParam(t *testing.T) {
	src := `
		contract Registry (
			addr : ByStr20 with contract field balances : Map ByStr20 Uint128, field total_supply : Uint128 end
		)
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.InitParams, 1)

	want := ast.AddressType{Kind: ast.ContractRefinement{Fields: []ast.Field{
		ast.NewField("balances", ast.MapType{Key: ast.ByStrNType{N: 20}, Value: ast.Uint128}),
		ast.NewField("total_supply", ast.Uint128),
	}}}
	assert.Equal(t, "addr", c.InitParams[0].Name)
	assert.True(t, want.Equal(c.InitParams[0].Type))
}

func TestTransitionArities(t *testing.T) {
	src := `
		contract Wallet ()

		transition AcceptZil ()
		end

		transition Fund (user : ByStr20, amount : Uint128)
			accepted;
		end
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.Transitions, 2)

	assert.Equal(t, "AcceptZil", c.Transitions[0].Name)
	assert.Empty(t, c.Transitions[0].Params)

	assert.Equal(t, "Fund", c.Transitions[1].Name)
	require.Len(t, c.Transitions[1].Params, 2)
	assert.Equal(t, "user", c.Transitions[1].Params[0].Name)
	assert.Equal(t, "amount", c.Transitions[1].Params[1].Name)
}

func TestBareTransitionNameIsZeroParams(t *testing.T) {
	src := `
		contract Wallet ()

		transition Ping
			e = { _eventname : "Ping" };
			event e
		end
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.Transitions, 1)
	assert.Equal(t, "Ping", c.Transitions[0].Name)
	assert.Empty(t, c.Transitions[0].Params)
}

func TestProceduresAreSkippedButTransitionsSurviveInOrder(t *testing.T) {
	src := `
		contract Wallet ()

		procedure requireOwner ()
			is_owner = builtin eq owner _sender;
			match is_owner with
			| True => |
			| False => e = { _exception : "NotOwner" }; throw e
			end
		end

		transition First ()
		end

		procedure another ()
		end

		transition Second (x : Uint32)
		end
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.Transitions, 2)
	assert.Equal(t, "First", c.Transitions[0].Name)
	assert.Equal(t, "Second", c.Transitions[1].Name)
}

func TestOptionPairField(t *testing.T) {
	c, err := parseSource(t, `
		contract Voting ()

		field ballot : Option (Pair String Uint32) = None {(Pair String Uint32)}
	`)
	require.NoError(t, err)
	require.Len(t, c.Fields, 1)
	want := ast.OptionType{Inner: ast.PairType{First: ast.String, Second: ast.Uint32}}
	assert.True(t, want.Equal(c.Fields[0].Type))
}

func TestDeeplyNestedAddressRefinementInField(t *testing.T) {
	src := `
		contract Multisig ()

		field admin : ByStr20 with contract
			field delegate : ByStr20 with contract
				field owner : ByStr20 with contract end
			end
		end = _admin
	`
	c, err := parseSource(t, src)
	require.NoError(t, err)
	require.Len(t, c.Fields, 1)

	innermost := ast.ContractRefinement{}
	middle := ast.ContractRefinement{Fields: []ast.Field{
		ast.NewField("owner", ast.AddressType{Kind: innermost}),
	}}
	outer := ast.AddressType{Kind: ast.ContractRefinement{Fields: []ast.Field{
		ast.NewField("delegate", ast.AddressType{Kind: middle}),
	}}}
	assert.True(t, outer.Equal(c.Fields[0].Type))
}

func TestParsingIsDeterministic(t *testing.T) {
	src := `contract Wallet (owner : ByStr20)

		field balance : Uint128 = Uint128 0

		transition Fund (amount : Uint128)
		end
	`
	c1, err1 := parseSource(t, src)
	c2, err2 := parseSource(t, src)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, c1.Equal(c2))
}

func TestWhitespaceIsSemanticallyInert(t *testing.T) {
	compact := `contract Wallet(owner:ByStr20) field balance:Uint128=Uint128 0`
	spaced := "contract   Wallet  (  owner  :  ByStr20  )\n\n  field   balance  :  Uint128  =  Uint128 0\n"

	c1, err1 := parseSource(t, compact)
	c2, err2 := parseSource(t, spaced)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, c1.Equal(c2))
}

func TestContractWithoutIdentifierIsUnexpectedToken(t *testing.T) {
	_, err := parseSource(t, "contract ()")
	require.Error(t, err)
	perr, ok := err.(*ast.Error)
	require.True(t, ok)
	assert.Equal(t, ast.KindUnexpectedToken, perr.Kind)
}

func TestFieldMissingTypeIsUnexpectedToken(t *testing.T) {
	_, err := parseSource(t, "contract C () field x = 1")
	require.Error(t, err)
	perr, ok := err.(*ast.Error)
	require.True(t, ok)
	assert.Equal(t, ast.KindUnexpectedToken, perr.Kind)
}

func TestTrailingTokensAfterFieldInitializerAreSkipped(t *testing.T) {
	_, err := parseSource(t, "contract C () field x : Uint32 = 1 nonsense_trailer !!not-a-declaration")
	// The initializer skipper runs until the next declaration keyword or
	// end of input, so everything after "= 1" is taken as part of the
	// initializer and the parse succeeds.
	require.NoError(t, err)
}

func TestUnexpectedTokenAfterCompleteContract(t *testing.T) {
	_, err := parseSource(t, "contract C () ) ")
	require.Error(t, err)
	perr, ok := err.(*ast.Error)
	require.True(t, ok)
	assert.Equal(t, ast.KindUnexpectedToken, perr.Kind)
}
