// Package parser builds a syntax tree out of a token stream using
// recursive descent with precedence climbing for expressions.
package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Parser consumes a fixed slice of tokens and produces a list of
// statements. A zero Parser is not usable; construct one with New.
type Parser struct {
	toks   []token.Token
	cur    int
	errors ErrorList
}

// New returns a Parser over toks, which must end with an EOF token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse scans toks into a program (a list of top-level statements). The
// returned error, if non-nil, is an ErrorList; parsing continues past an
// error by resynchronizing at the next statement boundary, so more than
// one mistake can be reported per pass.
func Parse(toks []token.Token) ([]ast.Stmt, error) {
	p := New(toks)
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, p.errors.Err()
}

// ParseExpr parses a single expression followed by EOF and returns its
// tree.
func ParseExpr(toks []token.Token) (ast.Expr, error) {
	p := New(toks)
	e := p.expression()
	p.consume(token.EOF, "expect end of expression")
	return e, p.errors.Err()
}

// --- token stream helpers ---

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }
func (p *Parser) peek() token.Token { return p.toks[p.cur] }
func (p *Parser) previous() token.Token { return p.toks[p.cur-1] }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(k token.Kind) bool {
	if p.atEnd() {
		return k == token.EOF
	}
	return p.peek().Kind == k
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

func (p *Parser) errorAt(t token.Token, msg string) parseError {
	p.errors.Add(t.Line, msg)
	return parseError{}
}

// synchronize discards tokens until it reaches what looks like the start of
// the next statement, so one mistake doesn't cascade into spurious errors
// for the rest of the file.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN, token.BREAK:
			return
		}
		p.advance()
	}
}

// --- declarations & statements ---

func (p *Parser) declaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDecl()
	case p.match(token.FUN):
		return p.function(ast.KindFunction)
	case p.match(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.IDENT, "expect class name")

	var super *ast.Variable
	if p.match(token.LT) {
		p.consume(token.IDENT, "expect superclass name")
		super = &ast.Variable{Name: p.previous()}
	}

	p.consume(token.LBRACE, "expect '{' before class body")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		kind := ast.KindMethod
		if p.check(token.IDENT) && p.peek().Lexeme == "init" {
			kind = ast.KindInitializer
		}
		methods = append(methods, p.function(kind))
	}
	p.consume(token.RBRACE, "expect '}' after class body")

	return &ast.ClassStmt{Name: name, Superclass: super, Methods: methods}
}

func (p *Parser) function(kind ast.FunctionKind) *ast.FunctionStmt {
	what := kind.String()
	name := p.consume(token.IDENT, "expect "+what+" name")
	p.consume(token.LPAREN, "expect '(' after "+what+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.IDENT, "expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expect ')' after parameters")

	p.consume(token.LBRACE, "expect '{' before "+what+" body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body, Kind: kind}
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENT, "expect variable name")
	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMI, "expect ';' after variable declaration")
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.BREAK):
		return p.breakStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LBRACE):
		ln := p.previous().Line
		return &ast.BlockStmt{Stmts: p.block(), Ln: ln}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	ln := p.previous().Line
	v := p.expression()
	p.consume(token.SEMI, "expect ';' after value")
	return &ast.PrintStmt{Expr: v, Ln: ln}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.consume(token.SEMI, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.SEMI, "expect ';' after 'break'")
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) exprStmt() ast.Stmt {
	e := p.expression()
	p.consume(token.SEMI, "expect ';' after expression")
	return &ast.ExprStmt{Expr: e}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "expect '}' after block")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Ln: ln}
}

func (p *Parser) whileStmt() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body, Ln: ln}
}

// forStmt desugars the C-style for loop into a block containing the
// initializer followed by a while loop whose body appends the increment,
// matching spec.md §4.D's documented desugaring.
func (p *Parser) forStmt() ast.Stmt {
	ln := p.previous().Line
	p.consume(token.LPAREN, "expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		init = nil
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "expect ';' after loop condition")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.consume(token.RPAREN, "expect ')' after for clauses")

	body := p.statement()

	if incr != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: incr}}, Ln: ln}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true, Ln: ln}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body, Ln: ln}

	if init != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{init, body}, Ln: ln}
	}
	return body
}

// --- expressions, in increasing precedence order ---

func (p *Parser) expression() ast.Expr { return p.assignment() }

func (p *Parser) assignment() ast.Expr {
	e := p.or()

	if p.match(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch target := e.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(eq, "invalid assignment target")
			return e
		}
	}
	return e
}

func (p *Parser) or() ast.Expr {
	e := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		e = &ast.Logical{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) and() ast.Expr {
	e := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		e = &ast.Logical{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) equality() ast.Expr {
	e := p.comparison()
	for p.match(token.BANG_EQ, token.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		e = &ast.Binary{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) comparison() ast.Expr {
	e := p.term()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.term()
		e = &ast.Binary{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) term() ast.Expr {
	e := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		e = &ast.Binary{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) factor() ast.Expr {
	e := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		e = &ast.Binary{Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	e := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			e = p.finishCall(e)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "expect property name after '.'")
			e = &ast.Get{Object: e, Name: name}
		default:
			return e
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "expect ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	ln := p.peek().Line
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false, Ln: ln}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true, Ln: ln}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil, Ln: ln}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal, Ln: ln}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "expect '.' after 'super'")
		method := p.consume(token.IDENT, "expect superclass method name")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LPAREN):
		e := p.expression()
		p.consume(token.RPAREN, "expect ')' after expression")
		return &ast.Grouping{Inner: e, Ln: ln}
	default:
		panic(p.errorAt(p.peek(), "expect expression"))
	}
}
