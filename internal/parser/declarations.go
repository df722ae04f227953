package parser

import (
	"github.com/bel-learning/mila-compiler/internal/ast"
	"github.com/bel-learning/mila-compiler/internal/token"
)

// parseType parses a type name; only INTEGER is recognized (spec.md's only
// implemented type).
func (p *Parser) parseType() (*ast.TypeExpr, error) {
	tok, err := p.expect(token.INTEGER)
	if err != nil {
		return nil, err
	}
	return &ast.TypeExpr{Token: tok, Name: "integer"}, nil
}

// parseParamList parses `[ IDENT ':' type { ',' IDENT ':' type } ]`.
func (p *Parser) parseParamList() ([]string, error) {
	var names []string
	if p.curIs(token.RPAREN) {
		return names, nil
	}
	for {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		names = append(names, nameTok.Literal)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return names, nil
}

// parseVarDeclBlock parses `'var' { IDENT ':' type ';' }`.
func (p *Parser) parseVarDeclBlock() ([]*ast.VarDecl, error) {
	if _, err := p.expect(token.VAR); err != nil {
		return nil, err
	}
	var decls []*ast.VarDecl
	for p.curIs(token.Identifier) {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		decls = append(decls, &ast.VarDecl{Token: nameTok, Name: nameTok.Literal, Type: typ})
	}
	return decls, nil
}

// parseConstDeclBlock parses `'const' { IDENT '=' expression ';' }`.
func (p *Parser) parseConstDeclBlock() ([]*ast.VarDecl, error) {
	if _, err := p.expect(token.CONST); err != nil {
		return nil, err
	}
	var decls []*ast.VarDecl
	for p.curIs(token.Identifier) {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQL); err != nil {
			return nil, err
		}
		init, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		decls = append(decls, &ast.VarDecl{Token: nameTok, Name: nameTok.Literal, Init: init, Const: true})
	}
	return decls, nil
}

// parseFunctionOrProcedure parses a function or procedure declaration,
// either a forward declaration or a full body.
func (p *Parser) parseFunctionOrProcedure() (*ast.FunctionDecl, error) {
	isFunction := p.curIs(token.FUNCTION)
	p.advance() // 'function' or 'procedure'

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	hasReturn := false
	if isFunction {
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		hasReturn = true
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	proto := &ast.Prototype{Token: nameTok, Name: nameTok.Literal, Params: params, HasReturn: hasReturn}

	if p.curIs(token.FORWARD) {
		p.advance()
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.FunctionDecl{Proto: proto}, nil
	}

	var locals []*ast.VarDecl
	for p.curIs(token.VAR) || p.curIs(token.CONST) {
		var decls []*ast.VarDecl
		var err error
		if p.curIs(token.VAR) {
			decls, err = p.parseVarDeclBlock()
		} else {
			decls, err = p.parseConstDeclBlock()
		}
		if err != nil {
			return nil, err
		}
		locals = append(locals, decls...)
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{Proto: proto, Locals: locals, Body: body}, nil
}
