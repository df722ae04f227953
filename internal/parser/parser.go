// Package parser implements a recursive-descent parser with Pratt-style
// precedence climbing for expressions, turning a token stream into the
// typed AST in internal/ast (spec.md §4.2).
//
// The parser holds exactly one current token plus one token of lookahead
// (curToken/peekToken), advances left-to-right, and does not attempt error
// recovery: the first SyntaxError/NotAnLValue aborts the current
// production and is returned to the caller.
package parser

import (
	"fmt"

	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/errors"
	"github.com/bel-learning/mila-compiler/internal/lexer"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// Precedence levels, lowest to highest, matching spec.md §4.2's table.
const (
	LOWEST = iota
	ASSIGN // := (right-associative)
	OR     // or ||
	AND    // and xor
	COMPARE
	SUM     // + -
	PRODUCT // * mod div
	PREFIX  // not
)

var precedences = map[token.Type]int{
	token.ASSIGN:  ASSIGN,
	token.OR:      OR,
	token.OR_OR:   OR,
	token.AND:     AND,
	token.XOR:     AND,
	token.EQL:     COMPARE,
	token.NEQ:     COMPARE,
	token.NOT_EQ:  COMPARE,
	token.LSS:     COMPARE,
	token.LESS_EQ: COMPARE,
	token.GTR:     COMPARE,
	token.GTR_EQ:  COMPARE,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.MOD:     PRODUCT,
	token.DIV:     PRODUCT,
}

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string

	curToken  token.Token
	peekToken token.Token

	err error // first error wins; parsing aborts once set
}

// New creates a Parser reading from l. source and file are used only to
// render diagnostics with quoted source context; file may be empty.
func New(l *lexer.Lexer, source, file string) *Parser {
	p := &Parser{l: l, source: source, file: file}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			p.err = errors.New(errors.LexError, lexErr.Pos, lexErr.Message, p.source, p.file)
			return
		}
		p.err = err
		return
	}
	p.peekToken = tok
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// fail records a SyntaxError (unless an error is already pending) and
// returns it.
func (p *Parser) fail(format string, args ...any) error {
	if p.err != nil {
		return p.err
	}
	msg := fmt.Sprintf(format, args...)
	p.err = errors.New(errors.SyntaxError, p.curToken.Pos, msg, p.source, p.file)
	return p.err
}

// expect advances past curToken if it has type tt, else fails with a
// SyntaxError naming the expected and found tags.
func (p *Parser) expect(tt token.Type) (token.Token, error) {
	if p.err != nil {
		return token.Token{}, p.err
	}
	if p.curToken.Type != tt {
		if tt == token.Identifier && p.curToken.Type.IsKeyword() {
			return token.Token{}, p.fail("expected identifier, found reserved word %q", p.curToken.Type)
		}
		return token.Token{}, p.fail("expected %s, found %s", tt, p.curToken.Type)
	}
	tok := p.curToken
	p.advance()
	return tok, nil
}

func (p *Parser) curIs(tt token.Type) bool { return p.curToken.Type == tt }

// ParseProgram parses an entire program: `program IDENT ; module .`
func (p *Parser) ParseProgram() (*ast.Program, error) {
	progTok, err := p.expect(token.PROGRAM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	prog := &ast.Program{Token: progTok, Name: nameTok.Literal}

	for !p.curIs(token.BEGIN) && !p.curIs(token.EOF) {
		switch p.curToken.Type {
		case token.FUNCTION, token.PROCEDURE:
			fn, err := p.parseFunctionOrProcedure()
			if err != nil {
				return nil, err
			}
			prog.Functions = append(prog.Functions, fn)
		case token.VAR:
			decls, err := p.parseVarDeclBlock()
			if err != nil {
				return nil, err
			}
			prog.MainLocals = append(prog.MainLocals, decls...)
		case token.CONST:
			decls, err := p.parseConstDeclBlock()
			if err != nil {
				return nil, err
			}
			prog.MainLocals = append(prog.MainLocals, decls...)
		default:
			return nil, p.fail("expected function, procedure, var, const, or begin, found %s", p.curToken.Type)
		}
	}

	main, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	prog.Main = main

	if _, err := p.expect(token.PERIOD); err != nil {
		return nil, err
	}
	return prog, nil
}
