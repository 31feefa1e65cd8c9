// Package diag implements the checker's diagnostic channel: a
// structured Diagnostic type, a Kind enum classifying what went wrong,
// and a Bag collector that accumulates diagnostics across a whole
// checking session without aborting it (spec.md §7's recoverable/fatal
// split). Grounded directly on the teacher's internal/semantic/errors.go
// (SemanticErrorType + SemanticError, one constructor function per
// error shape) and internal/errors/errors.go (CompilerError.Format,
// the line/caret source-context renderer) — generalized from Pascal's
// error vocabulary (abstract class, inheritance, interface) to this
// language's (narrowing, overload groups, decorator misuse, excess
// properties).
package diag

import "fmt"

// Kind classifies a Diagnostic, mirroring the teacher's
// SemanticErrorType string-enum of named error shapes.
type Kind string

const (
	TypeMismatch         Kind = "type_mismatch"
	UndefinedName        Kind = "undefined_name"
	UndefinedType        Kind = "undefined_type"
	Redeclaration        Kind = "redeclaration"
	InvalidOperation     Kind = "invalid_operation"
	PrivateAccess        Kind = "private_access"
	ReadonlyAssignment   Kind = "readonly_assignment"
	InvalidAssignment    Kind = "invalid_assignment"
	InvalidReturn        Kind = "invalid_return"
	InvalidBreak         Kind = "invalid_break"
	InvalidContinue      Kind = "invalid_continue"
	MissingReturn        Kind = "missing_return"
	ArgumentCount        Kind = "argument_count"
	InheritanceError     Kind = "inheritance"
	AbstractInstantiation Kind = "abstract_instantiation"
	InterfaceMismatch    Kind = "interface_mismatch"
	GenericConstraint    Kind = "generic_constraint"
	DecoratorMisuse      Kind = "decorator_misuse"
	DuplicateOverload    Kind = "duplicate_overload"
	ExcessProperty       Kind = "excess_property"
	ModuleResolution     Kind = "module_resolution"
	NotCallable          Kind = "not_callable"
	AbstractNotImplemented Kind = "abstract_not_implemented"
	OverrideNotFound     Kind = "override_not_found"
	DuplicateIndexSignature Kind = "duplicate_index_signature"
	MixedBigInt          Kind = "mixed_bigint"
	LabelNotFound        Kind = "label_not_found"
	ExportAssignmentConflict Kind = "export_assignment_conflict"
	UnsupportedShift     Kind = "unsupported_shift"
	SyntaxErrorKind      Kind = "syntax_error"
)

// Severity distinguishes a recoverable diagnostic from a fatal one
// that aborts the current module's checking (spec.md §7).
type Severity int

const (
	Error Severity = iota
	Warning
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Fatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Position is the (line, column) of the offending token, 1-indexed to
// match the lexer/parser's own token.Position.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is one structured checker finding.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	File     string
	Pos      Position

	// Context mirrors the teacher's SemanticError free-form Context
	// map, for payload fields a particular Kind needs that don't
	// warrant their own struct field (e.g. argument_count's
	// expected/got counts).
	Context map[string]any
}

// Error implements the error interface so a Diagnostic can be returned
// from APIs that expect one.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at %d:%d", d.Message, d.Pos.Line, d.Pos.Column)
}

// New builds a recoverable (Severity: Error) Diagnostic.
func New(kind Kind, pos Position, file, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: Error, Pos: pos, File: file, Message: message}
}

// NewFatal builds a Fatal-severity Diagnostic.
func NewFatal(kind Kind, pos Position, file, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: Fatal, Pos: pos, File: file, Message: message}
}

// NewWarning builds a Warning-severity Diagnostic.
func NewWarning(kind Kind, pos Position, file, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: Warning, Pos: pos, File: file, Message: message}
}

// TypeMismatchDiag reports that a value of type `got` was used where
// `expected` was required, grounded on the teacher's NewTypeMismatch.
func TypeMismatchDiag(pos Position, file string, expected, got fmt.Stringer, subject string) *Diagnostic {
	msg := fmt.Sprintf("Type '%s' is not assignable to type '%s'", got.String(), expected.String())
	if subject != "" {
		msg = fmt.Sprintf("Type '%s' is not assignable to type '%s' for '%s'", got.String(), expected.String(), subject)
	}
	return &Diagnostic{
		Kind: TypeMismatch, Severity: Error, Pos: pos, File: file, Message: msg,
		Context: map[string]any{"expected": expected.String(), "got": got.String()},
	}
}

// UndefinedNameDiag reports an identifier with no binding in scope.
func UndefinedNameDiag(pos Position, file, name string) *Diagnostic {
	return New(UndefinedName, pos, file, fmt.Sprintf("Cannot find name '%s'", name))
}

// UndefinedTypeDiag reports a type reference with no matching
// declaration.
func UndefinedTypeDiag(pos Position, file, name string) *Diagnostic {
	return New(UndefinedType, pos, file, fmt.Sprintf("Cannot find name '%s'", name))
}

// RedeclarationDiag reports a name already bound in the same scope.
func RedeclarationDiag(pos Position, file, name string) *Diagnostic {
	return New(Redeclaration, pos, file, fmt.Sprintf("Cannot redeclare block-scoped variable '%s'", name))
}

// PrivateAccessDiag reports access to a private/protected member from
// outside its owning class.
func PrivateAccessDiag(pos Position, file, member, class string) *Diagnostic {
	return New(PrivateAccess, pos, file, fmt.Sprintf("Property '%s' is private and only accessible within class '%s'", member, class))
}

// ReadonlyAssignmentDiag reports an assignment to a const binding or
// readonly field/property.
func ReadonlyAssignmentDiag(pos Position, file, name string) *Diagnostic {
	return New(ReadonlyAssignment, pos, file, fmt.Sprintf("Cannot assign to '%s' because it is a read-only property", name))
}

// MissingReturnDiag reports a function whose declared return type
// requires a value on every path, but some path falls off the end.
func MissingReturnDiag(pos Position, file, fnName string) *Diagnostic {
	return New(MissingReturn, pos, file, fmt.Sprintf("Function '%s' lacks a return statement on all code paths", fnName))
}

// ArgumentCountDiag reports a call with the wrong number of arguments.
func ArgumentCountDiag(pos Position, file string, expected, got int) *Diagnostic {
	d := New(ArgumentCount, pos, file, fmt.Sprintf("Expected %d arguments, but got %d", expected, got))
	d.Context = map[string]any{"expected": expected, "got": got}
	return d
}

// AbstractInstantiationDiag reports `new` applied to an abstract class.
func AbstractInstantiationDiag(pos Position, file, className string) *Diagnostic {
	return New(AbstractInstantiation, pos, file, fmt.Sprintf("Cannot create an instance of an abstract class '%s'", className))
}

// DecoratorMisuseDiag reports a decorator attached to a syntax
// position not permitted under the active decorator mode.
func DecoratorMisuseDiag(pos Position, file, detail string) *Diagnostic {
	return New(DecoratorMisuse, pos, file, detail)
}

// ExcessPropertyDiag reports a fresh object literal with a property
// not present on the target type (spec.md's excess-property check).
func ExcessPropertyDiag(pos Position, file, property, targetType string) *Diagnostic {
	return New(ExcessProperty, pos, file, fmt.Sprintf("Object literal may only specify known properties, and '%s' does not exist in type '%s'", property, targetType))
}

// NotCallableDiag reports a call or new expression whose callee type
// has no call (or construct) signature.
func NotCallableDiag(pos Position, file, typeName string) *Diagnostic {
	return New(NotCallable, pos, file, fmt.Sprintf("This expression is not callable. Type '%s' has no call signatures", typeName))
}

// AbstractNotImplementedDiag reports a non-abstract class that fails
// to implement one or more abstract members inherited from its
// superclass chain (spec.md S4).
func AbstractNotImplementedDiag(pos Position, file, className string, members []string) *Diagnostic {
	d := New(AbstractNotImplemented, pos, file, fmt.Sprintf("Non-abstract class '%s' does not implement inherited abstract member%s: %s", className, plural(len(members)), joinNames(members)))
	d.Context = map[string]any{"members": members}
	return d
}

// OverrideNotFoundDiag reports an `override` member with no matching
// member anywhere in the superclass chain.
func OverrideNotFoundDiag(pos Position, file, member, className string) *Diagnostic {
	return New(OverrideNotFound, pos, file, fmt.Sprintf("This member cannot have an 'override' modifier because it is not declared in the base class '%s'", className)+" ("+member+")")
}

// DuplicateIndexSignatureDiag reports more than one index signature of
// the same key kind (string or number) on a single Record/Interface.
func DuplicateIndexSignatureDiag(pos Position, file, keyKind string) *Diagnostic {
	return New(DuplicateIndexSignature, pos, file, fmt.Sprintf("Duplicate index signature for type '%s'", keyKind))
}

// MixedBigIntDiag reports an arithmetic operator combining a bigint
// operand with a non-bigint numeric operand (spec.md S6).
func MixedBigIntDiag(pos Position, file, operator string) *Diagnostic {
	return New(MixedBigInt, pos, file, fmt.Sprintf("Operator '%s' cannot be applied to types 'bigint' and 'number'", operator))
}

// LabelNotFoundDiag reports a labeled break/continue whose label has
// no enclosing LabeledStatement.
func LabelNotFoundDiag(pos Position, file, label string) *Diagnostic {
	return New(LabelNotFound, pos, file, fmt.Sprintf("A label named '%s' is not found", label))
}

// BreakOutsideLoopDiag reports a bare break/continue with no enclosing
// loop or switch.
func BreakOutsideLoopDiag(pos Position, file, keyword string) *Diagnostic {
	return New(InvalidBreak, pos, file, fmt.Sprintf("A '%s' statement can only be used within an enclosing iteration or switch statement", keyword))
}

// ExportAssignmentConflictDiag reports `export =` combined with any
// other export form in the same module (spec.md §4.6/§7).
func ExportAssignmentConflictDiag(pos Position, file string) *Diagnostic {
	return NewFatal(ExportAssignmentConflict, pos, file, "A module cannot have multiple export assignments, nor combine 'export =' with other exports")
}

// UnsupportedShiftDiag reports an unsigned right shift (`>>>`) applied
// to a bigint operand, which has no meaning for arbitrary-precision
// integers.
func UnsupportedShiftDiag(pos Position, file string) *Diagnostic {
	return New(UnsupportedShift, pos, file, "BigInt does not support the unsigned right shift operation")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n + "()"
	}
	return out
}
