package parser

import (
	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/errors"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// parseExpression implements Pratt-style precedence climbing: it parses one
// prefix production, then repeatedly folds in infix operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.err == nil && precedence < precedences[p.curToken.Type] {
		opTok := p.curToken
		left, err = p.parseInfix(opTok, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.curToken.Type {
	case token.Number:
		tok := p.curToken
		p.advance()
		return &ast.IntegerLiteral{Token: tok, Value: tok.Value}, nil

	case token.Identifier:
		tok := p.curToken
		p.advance()
		if p.curIs(token.LPAREN) {
			return p.parseCallExpr(tok)
		}
		return &ast.NameRef{Token: tok, Name: tok.Literal}, nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.NOT:
		tok := p.curToken
		p.advance()
		operand, err := p.parseExpression(PREFIX)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Token: tok, Operator: token.NOT, Operand: operand}, nil

	default:
		if p.curToken.Type.IsLiteral() {
			return nil, p.fail("%s literals cannot appear in an expression", p.curToken.Type)
		}
		return nil, p.fail("expected expression, found %s", p.curToken.Type)
	}
}

// parseCallExpr parses `IDENT '(' [ expression { ',' expression } ] ')'`
// with callee already consumed into nameTok and curToken positioned on '('.
func (p *Parser) parseCallExpr(nameTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	call := &ast.CallExpr{Token: nameTok, Callee: nameTok.Literal}
	if !p.curIs(token.RPAREN) {
		for {
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// parseInfix folds opTok and a freshly-parsed right-hand side into left.
// opTok is already curToken; the caller has not yet advanced past it.
func (p *Parser) parseInfix(opTok token.Token, left ast.Expression) (ast.Expression, error) {
	if opTok.Type == token.ASSIGN {
		if _, ok := left.(*ast.NameRef); !ok {
			return nil, errors.New(errors.NotAnLValue, opTok.Pos,
				"left-hand side of := is not assignable", p.source, p.file)
		}
		p.advance()
		// := is right-associative: parse the RHS at one precedence below
		// ASSIGN so a chain like a := b := c nests as a := (b := c).
		right, err := p.parseExpression(ASSIGN - 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Operator: token.ASSIGN, Left: left, Right: right, OpPos: opTok.Pos}, nil
	}

	prec := precedences[opTok.Type]
	p.advance()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Operator: opTok.Type, Left: left, Right: right, OpPos: opTok.Pos}, nil
}
