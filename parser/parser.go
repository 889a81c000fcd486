/*
File : rocket/parser/parser.go

Recursive-descent parser consuming the token sequence with one token of
lookahead (a two-token cur/peek buffer, grounded in the teacher's
Parser.CurrToken/NextToken fields in parser/parser.go). Rocket's grammar has
no infix operators and no precedence climb — every expression is a primary
followed by any mix of `.attr`, `[index]`, and `(call)` suffixes — so there
is no Pratt table here, unlike the teacher's BinaryFuncs/UnaryFuncs maps.
Parsing halts on the first error; there is no error-recovery/collection mode.
*/
package parser

import (
	"strconv"

	"github.com/rocket-lang/rocket/lexer"
	"github.com/rocket-lang/rocket/rockerr"
)

type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser over src, priming the two-token lookahead buffer.
// Any lex error surfaced while priming is returned immediately.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts peek into cur and reads a new peek token from the lexer.
func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) expect(tt lexer.TokenType) error {
	if p.cur.Type != tt {
		return p.unexpected(string(tt))
	}
	return p.advance()
}

func (p *Parser) unexpected(expected string) error {
	lit := p.cur.Literal
	if lit == "" {
		lit = string(p.cur.Type)
	}
	return rockerr.New(rockerr.Parse, p.cur.Pos, "expected %s, got %q", expected, lit)
}

// Parse lexes and parses src into a Program. It is the package's single
// entry point, grounded in the teacher's parser.NewParser(src).Parse().
func Parse(src string) (*Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

func (p *Parser) ParseProgram() (*Program, error) {
	var stmts []Statement
	for p.cur.Type != lexer.EOF {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &Program{Stmts: stmts}, nil
}

func (p *Parser) parseStmt() (Statement, error) {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.FN:
		return p.parseFnDecl()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.BREAK:
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &BreakStmt{Pos: pos}, nil
	case lexer.CONTINUE:
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &ContinueStmt{Pos: pos}, nil
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseLetStmt() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	if p.cur.Type != lexer.IDENT {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &LetStmt{Name: name, Expr: expr, Pos: pos}, nil
}

func (p *Parser) parseFnDecl() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'fn'
		return nil, err
	}
	if p.cur.Type != lexer.IDENT {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.cur.Type != lexer.RPAREN {
		if p.cur.Type != lexer.IDENT {
			return nil, p.unexpected("parameter name")
		}
		params = append(params, p.cur.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FnDecl{Name: name, Params: params, Body: body, Pos: pos}, nil
}

func (p *Parser) parseIfStmt() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{Cond: cond, Then: then, Pos: pos}
	if p.cur.Type == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.IF {
			elseBranch, err := p.parseIfStmt()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBranch
		} else {
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBlock
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body, Pos: pos}, nil
}

func (p *Parser) parseForStmt() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.LET {
		letPos := p.cur.Pos
		if err := p.advance(); err != nil { // consume 'let'
			return nil, err
		}
		if p.cur.Type != lexer.IDENT {
			return nil, p.unexpected("identifier")
		}
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.OF {
			if err := p.advance(); err != nil { // consume 'of'
				return nil, err
			}
			iter, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			return &ForOfStmt{VarName: name, Iter: iter, Body: body, Pos: pos}, nil
		}
		if err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		initExpr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		init := &LetStmt{Name: name, Expr: initExpr, Pos: letPos}
		return p.finishCFor(pos, init)
	}

	if p.cur.Type == lexer.SEMI {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.finishCFor(pos, nil)
	}

	initExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	initPos := exprPos(initExpr)
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	init := &ExprStmt{Expr: initExpr, Pos: initPos}
	return p.finishCFor(pos, init)
}

func (p *Parser) finishCFor(pos rockerr.Position, init Statement) (Statement, error) {
	var cond Expression
	if p.cur.Type != lexer.SEMI {
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	var post Expression
	if p.cur.Type != lexer.RPAREN {
		pe, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		post = pe
	}
	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &CForStmt{Init: init, Cond: cond, Post: post, Body: body, Pos: pos}, nil
}

func (p *Parser) parseReturnStmt() (Statement, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	if p.cur.Type == lexer.SEMI {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ReturnStmt{Pos: pos}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: expr, Pos: pos}, nil
}

func (p *Parser) parseBlock() (*Block, error) {
	pos := p.cur.Pos
	if err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var stmts []Statement
	for p.cur.Type != lexer.RBRACE {
		if p.cur.Type == lexer.EOF {
			return nil, p.unexpected("'}'")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return &Block{Stmts: stmts, Pos: pos}, nil
}

// parseExprOrAssignStmt handles expr_stmt and the language's one assignment
// statement form. parseExpr itself already folds a trailing `target = value`
// into an *AssignExpr; this just decides which statement wrapper to return.
func (p *Parser) parseExprOrAssignStmt() (Statement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if assign, ok := expr.(*AssignExpr); ok {
		if err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return &AssignStmt{Target: assign.Target, Value: assign.Value, Pos: assign.Pos}, nil
	}
	pos := exprPos(expr)
	if err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr, Pos: pos}, nil
}

// parseExpr parses a postfix expression and, if it is immediately followed
// by '=', folds it into an *AssignExpr — the only place assignment can
// appear in the grammar, since there is no bare-name assignment and no
// increment operator. This lets assignment show up anywhere an expr is
// accepted: an expr_stmt (via parseExprOrAssignStmt), or a for-loop's cond/
// post clause, which the grammar otherwise gives no way to mutate a counter
// from.
func (p *Parser) parseExpr() (Expression, error) {
	prim, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	expr, err := p.parsePostfix(prim)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ASSIGN {
		return expr, nil
	}
	pos := p.cur.Pos
	switch expr.(type) {
	case *IndexExpr, *AttrExpr:
	default:
		return nil, rockerr.New(rockerr.Parse, pos, "assignment target must be a subscript or attribute expression")
	}
	if err := p.advance(); err != nil { // consume '='
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &AssignExpr{Target: expr, Value: rhs, Pos: PosOf(expr)}, nil
}

func (p *Parser) parsePostfix(expr Expression) (Expression, error) {
	for {
		switch p.cur.Type {
		case lexer.DOT:
			pos := PosOf(expr)
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type != lexer.IDENT {
				return nil, p.unexpected("attribute name")
			}
			name := p.cur.Literal
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = &AttrExpr{Target: expr, Name: name, Pos: pos}
		case lexer.LBRACKET:
			pos := PosOf(expr)
			if err := p.advance(); err != nil {
				return nil, err
			}
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Target: expr, Key: key, Pos: pos}
		case lexer.LPAREN:
			pos := PosOf(expr)
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			expr = &CallExpr{Callee: expr, Args: args, Pos: pos}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Expression, error) {
	var args []Expression
	for p.cur.Type != lexer.RPAREN {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	pos := p.cur.Pos
	switch p.cur.Type {
	case lexer.INT:
		n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, rockerr.New(rockerr.Parse, pos, "invalid integer literal %q", p.cur.Literal)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &IntLit{Value: n, Pos: pos}, nil
	case lexer.FLOAT:
		f, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			return nil, rockerr.New(rockerr.Parse, pos, "invalid float literal %q", p.cur.Literal)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &FloatLit{Value: f, Pos: pos}, nil
	case lexer.STRING:
		s := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StrLit{Value: s, Pos: pos}, nil
	case lexer.NULL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NullLit{Pos: pos}, nil
	case lexer.TRUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{Value: true, Pos: pos}, nil
	case lexer.FALSE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{Value: false, Pos: pos}, nil
	case lexer.IDENT:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NameExpr{Name: name, Pos: pos}, nil
	case lexer.LBRACKET:
		return p.parseListLit()
	case lexer.LBRACE:
		return p.parseDictLit()
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.unexpected("an expression")
	}
}

func (p *Parser) parseListLit() (Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elems []Expression
	for p.cur.Type != lexer.RBRACKET {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ListLit{Elems: elems, Pos: pos}, nil
}

func (p *Parser) parseDictLit() (Expression, error) {
	pos := p.cur.Pos
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var keys, vals []Expression
	for p.cur.Type != lexer.RBRACE {
		k, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		vals = append(vals, v)
		if p.cur.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &DictLit{Keys: keys, Values: vals, Pos: pos}, nil
}

func exprPos(e Expression) rockerr.Position {
	return PosOf(e)
}
