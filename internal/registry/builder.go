package registry

import (
	"slices"

	"github.com/mpyw/knownsafe/annotation"
)

// Builder accumulates registry entries. Builders are single-use.
type Builder struct {
	acc    Accumulator
	err    error
	frozen bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddType registers t after checking that every container-of name is one of
// t's declared type parameters. A mismatch is recorded as a *CatalogDefectError
// returned by Build; later insertions are then ignored.
func (b *Builder) AddType(t Generic, containerOf ...string) *Builder {
	b.checkNotFrozen()
	if b.err != nil {
		return b
	}

	declared := t.TypeParamNames()

	var invalid []string
	for _, name := range containerOf {
		if !slices.Contains(declared, name) && !slices.Contains(invalid, name) {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		b.err = &CatalogDefectError{
			Type:     t.QualifiedName(),
			Invalid:  invalid,
			Declared: declared,
		}
		return b
	}

	return b.put(t.QualifiedName(), containerOf)
}

// Add registers name without validation.
func (b *Builder) Add(name string, containerOf ...string) *Builder {
	b.checkNotFrozen()
	if b.err != nil {
		return b
	}

	return b.put(name, containerOf)
}

// AddTypes calls AddType for each type, in order, with no container-of names.
func (b *Builder) AddTypes(generics []Generic) *Builder {
	for _, t := range generics {
		b.AddType(t)
	}
	return b
}

// AddNames calls Add for each name, in order, with no container-of names.
func (b *Builder) AddNames(names []string) *Builder {
	for _, name := range names {
		b.Add(name)
	}
	return b
}

// Build freezes the builder and returns the accumulated table, or the first
// catalog defect encountered.
func (b *Builder) Build() (*Table, error) {
	b.checkNotFrozen()
	b.frozen = true

	if b.err != nil {
		return nil, b.err
	}

	return b.acc.Freeze(), nil
}

func (b *Builder) put(name string, containerOf []string) *Builder {
	b.acc.Put(name, annotation.New(name, containerOf...))
	return b
}

func (b *Builder) checkNotFrozen() {
	if b.frozen {
		panic(ErrBuilderFrozen)
	}
}
