package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns a compact, single-line rendering of an IR node for debugging
// and tests. Files render one declaration per line.
func Dump(node interface{}) string {
	var sb strings.Builder
	dumpNode(&sb, node)
	return sb.String()
}

func dumpNode(sb *strings.Builder, node interface{}) {
	switch n := node.(type) {
	case *File:
		for i, d := range n.Decls {
			if i > 0 {
				sb.WriteString("\n")
			}
			dumpNode(sb, d)
		}
	case Decl:
		dumpDecl(sb, n)
	case Stmt:
		dumpStmt(sb, n)
	case Expr:
		dumpExpr(sb, n)
	case nil:
		sb.WriteString("<nil>")
	default:
		sb.WriteString(fmt.Sprintf("<unknown %T>", node))
	}
}

func dumpDecl(sb *strings.Builder, d Decl) {
	switch n := d.(type) {
	case *Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name + ": " + p.Type.String()
		}
		sb.WriteString(fmt.Sprintf("fun %s(%s): %s ", n.Name, strings.Join(params, ", "), n.ReturnType))
		dumpBlock(sb, n.Body)
	case *Property:
		sb.WriteString(fmt.Sprintf("val %s: %s", n.Name, n.Type))
		if n.Initializer != nil {
			sb.WriteString(" = ")
			dumpExpr(sb, n.Initializer)
		}
	default:
		sb.WriteString(fmt.Sprintf("<unknown %T>", d))
	}
}

func dumpBlock(sb *strings.Builder, stmts []Stmt) {
	sb.WriteString("{ ")
	for i, s := range stmts {
		if i > 0 {
			sb.WriteString("; ")
		}
		dumpStmt(sb, s)
	}
	sb.WriteString(" }")
}

// dumpBranch prints a single statement bare and anything else as a block.
func dumpBranch(sb *strings.Builder, stmts []Stmt) {
	if len(stmts) == 1 {
		dumpStmt(sb, stmts[0])
		return
	}
	dumpBlock(sb, stmts)
}

func dumpStmt(sb *strings.Builder, s Stmt) {
	switch n := s.(type) {
	case *VarDecl:
		sb.WriteString("val " + n.Var.Name + " = ")
		dumpExpr(sb, n.Init)
	case *AssignStmt:
		sb.WriteString(n.Var.Name + " = ")
		dumpExpr(sb, n.Value)
	case *ExprStmt:
		dumpExpr(sb, n.Expr)
	case *IfStmt:
		sb.WriteString("if (")
		dumpExpr(sb, n.Cond)
		sb.WriteString(") ")
		dumpBranch(sb, n.Then)
		if n.Else != nil {
			sb.WriteString(" else ")
			dumpBranch(sb, n.Else)
		}
	case *WhileStmt:
		sb.WriteString("while (")
		dumpExpr(sb, n.Cond)
		sb.WriteString(") ")
		dumpBranch(sb, n.Body)
	case *ReturnStmt:
		sb.WriteString("return")
		if n.Value != nil {
			sb.WriteString(" ")
			dumpExpr(sb, n.Value)
		}
	case nil:
		sb.WriteString("<nil>")
	default:
		sb.WriteString(fmt.Sprintf("<unknown %T>", s))
	}
}

func dumpExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *CallExpr:
		if n.Callee == nil {
			sb.WriteString("<nil>")
		} else {
			sb.WriteString(n.Callee.Name)
		}
		sb.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			dumpExpr(sb, a)
		}
		sb.WriteString(")")
	case *GetValue:
		sb.WriteString(n.Var.Name)
	case *BlockExpr:
		sb.WriteString("{ ")
		for _, s := range n.Stmts {
			dumpStmt(sb, s)
			sb.WriteString("; ")
		}
		dumpExpr(sb, n.Result)
		sb.WriteString(" }")
	case *ImplicitCast:
		dumpExpr(sb, n.Operand)
		sb.WriteString(" as " + n.Type.String())
	case *BinaryExpr:
		dumpExpr(sb, n.Left)
		sb.WriteString(" " + n.Op.String() + " ")
		dumpExpr(sb, n.Right)
	case *FieldAccess:
		dumpExpr(sb, n.Receiver)
		sb.WriteString("." + n.Field)
	case *IfExpr:
		sb.WriteString("if (")
		dumpExpr(sb, n.Cond)
		sb.WriteString(") ")
		dumpExpr(sb, n.Then)
		sb.WriteString(" else ")
		dumpExpr(sb, n.Else)
	case *IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	case *StringLit:
		sb.WriteString(strconv.Quote(n.Value))
	case *BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *NullLit:
		sb.WriteString("null")
	case nil:
		sb.WriteString("<nil>")
	default:
		sb.WriteString(fmt.Sprintf("<unknown %T>", e))
	}
}
