package ast

import (
	"github.com/cwbudde/go-tscheck/internal/token"
)

// ImportSpecifier is one `name` or `name as alias` entry of a named
// import clause.
type ImportSpecifier struct {
	Imported string
	Local    string // == Imported when there is no `as` clause
	TypeOnly bool
}

// ImportDeclaration covers every ES-module import form: default,
// named, namespace (`* as ns`), side-effect-only, and the CommonJS-
// style `import x = require("mod")` form.
type ImportDeclaration struct {
	Token           token.Token
	Default         string // "" if no default import
	NamespaceAlias  string // "" if no `* as ns` clause
	Named           []ImportSpecifier
	Source          string // module specifier, "" for the require-equals form
	TypeOnly        bool
	RequireEquals   bool
	RequireTarget   string // module specifier when RequireEquals is true
	EqualsBinding   string // binding name when RequireEquals is true
}

func (d *ImportDeclaration) statementNode()      {}
func (d *ImportDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *ImportDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *ImportDeclaration) String() string {
	if d.RequireEquals {
		return "import " + d.EqualsBinding + " = require(\"" + d.RequireTarget + "\");"
	}
	return "import ... from \"" + d.Source + "\";"
}

// ExportSpecifier is one `name` or `name as alias` entry of a named
// export clause.
type ExportSpecifier struct {
	Local    string
	Exported string // == Local when there is no `as` clause
	TypeOnly bool
}

// ExportDeclaration covers named exports, re-exports (`export {x} from
// "m"`), `export * from "m"`, `export * as ns from "m"`, default
// exports, and the CommonJS-style `export = expr` assignment form.
// Declaration holds the wrapped declaration for `export <decl>` forms
// (export of a function/class/variable/interface/type-alias/enum
// declared inline).
type ExportDeclaration struct {
	Token           token.Token
	Named           []ExportSpecifier
	Source          string // "" unless this is a re-export
	Star            bool   // `export * from "m"` or `export * as ns from "m"`
	StarAlias       string // set for `export * as ns from "m"`
	Default         Expression // set for `export default expr`
	Declaration     Statement  // set for `export <decl>` / `export default <decl>`
	IsExportEquals  bool
	ExportEqualsVal Expression
	TypeOnly        bool
}

func (d *ExportDeclaration) statementNode()      {}
func (d *ExportDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *ExportDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *ExportDeclaration) String() string {
	if d.IsExportEquals {
		return "export = " + d.ExportEqualsVal.String() + ";"
	}
	if d.Declaration != nil {
		return "export " + d.Declaration.String()
	}
	return "export { ... };"
}

// DeclareModuleStatement is `declare module "name" { body }` (ambient
// module augmentation) or `declare module Name { body }` (ambient
// namespace).
type DeclareModuleStatement struct {
	Token        token.Token
	Name         string
	StringNamed  bool // true when Name is a quoted module specifier
	Body         []Statement
}

func (d *DeclareModuleStatement) statementNode()      {}
func (d *DeclareModuleStatement) TokenLiteral() string { return d.Token.Literal }
func (d *DeclareModuleStatement) Pos() token.Position  { return d.Token.Pos }
func (d *DeclareModuleStatement) String() string       { return "declare module " + d.Name }

// DeclareGlobalStatement is `declare global { body }` (global
// augmentation from within a module file).
type DeclareGlobalStatement struct {
	Token token.Token
	Body  []Statement
}

func (d *DeclareGlobalStatement) statementNode()      {}
func (d *DeclareGlobalStatement) TokenLiteral() string { return d.Token.Literal }
func (d *DeclareGlobalStatement) Pos() token.Position  { return d.Token.Pos }
func (d *DeclareGlobalStatement) String() string       { return "declare global { ... }" }

// AmbientDeclaration wraps a single `declare` statement that is not a
// module or global augmentation (`declare const x: T;`, `declare
// function f(): T;`, `declare class C {}`).
type AmbientDeclaration struct {
	Token       token.Token
	Declaration Statement
}

func (d *AmbientDeclaration) statementNode()      {}
func (d *AmbientDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *AmbientDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *AmbientDeclaration) String() string       { return "declare " + d.Declaration.String() }
