package parser

import (
	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// parseBlock parses `'begin' { statement ';' } 'end'`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	beginTok, err := p.expect(token.BEGIN)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: beginTok}
	for !p.curIs(token.END) {
		if p.err != nil {
			return nil, p.err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStmtOrBlock accepts either a `begin…end` block or a single statement
// (the grammar's `stmt-or-block` production).
func (p *Parser) parseStmtOrBlock() (ast.Statement, error) {
	if p.curIs(token.BEGIN) {
		return p.parseBlock()
	}
	return p.parseStatement()
}

// parseStatement parses one statement (without its trailing semicolon,
// which the caller — parseBlock — consumes).
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.EXIT:
		tok := p.curToken
		p.advance()
		return &ast.ExitStmt{Token: tok}, nil
	case token.BEGIN:
		return p.parseBlock()
	default:
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expr: expr}, nil
	}
}

func (p *Parser) parseIfStatement() (*ast.IfStmt, error) {
	tok := p.curToken
	p.advance() // 'if'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.parseStmtOrBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Token: tok, Cond: cond, Then: then}
	if p.curIs(token.ELSE) {
		p.advance()
		elseStmt, err := p.parseStmtOrBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt
	}
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStmt, error) {
	tok := p.curToken
	p.advance() // 'while'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseStmtOrBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseForStatement() (*ast.ForStmt, error) {
	tok := p.curToken
	p.advance() // 'for'
	varTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	var downto bool
	switch p.curToken.Type {
	case token.TO:
		downto = false
	case token.DOWNTO:
		downto = true
	default:
		return nil, p.fail("expected to or downto, found %s", p.curToken.Type)
	}
	p.advance()
	end, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseStmtOrBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Token: tok, Var: varTok.Literal, Start: start, End: end, Downto: downto, Body: body}, nil
}
