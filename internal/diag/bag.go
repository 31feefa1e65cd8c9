package diag

// Bag collects diagnostics across a checking session, generalizing the
// teacher's PassContext pairing of `Errors []string` (legacy display
// strings) and `StructuredErrors []*SemanticError` (structured data)
// into one slice of *Diagnostic, since this checker never needed the
// string-only legacy path the teacher carried for backward
// compatibility with its older interpreter error format.
type Bag struct {
	items []*Diagnostic
	fatal *Diagnostic
}

// NewBag creates an empty Bag.
func NewBag() *Bag { return &Bag{} }

// Add appends a diagnostic. If its Severity is Fatal and no fatal
// diagnostic has been recorded yet, it is also remembered as the
// session-aborting error (spec.md §7: only the *first* fatal error
// matters). Session.Check looks at HasFatal() after each module is
// fully checked: the module that raised it still finishes, and the
// modules after it are not checked.
func (b *Bag) Add(d *Diagnostic) {
	b.items = append(b.items, d)
	if d.Severity == Fatal && b.fatal == nil {
		b.fatal = d
	}
}

// HasFatal reports whether a fatal diagnostic has been recorded,
// mirroring the teacher's PassContext.HasCriticalErrors() gating
// PassManager.RunAll.
func (b *Bag) HasFatal() bool { return b.fatal != nil }

// Fatal returns the first fatal diagnostic recorded, or nil.
func (b *Bag) Fatal() *Diagnostic { return b.fatal }

// HasErrors reports whether any Error or Fatal diagnostic (not
// counting Warning) was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error || d.Severity == Fatal {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded, in the order Add was called.
func (b *Bag) All() []*Diagnostic {
	return b.items
}

// Len returns the number of diagnostics recorded.
func (b *Bag) Len() int { return len(b.items) }

// Filter returns the subset of diagnostics matching kind.
func (b *Bag) Filter(kind Kind) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range b.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
