package schema

// Container is a schema: a top-level Declaration plus the transitive
// closure of Definitions reachable from it. A Container is produced
// once and is immutable for the lifetime of any decode/encode
// operation; codec.Decode and codec.Encode hold only a borrowed
// read-only view, so one Container may safely back many concurrent
// codec calls.
type Container struct {
	declaration Declaration
	defs        map[Declaration]Definition
	order       []Declaration // insertion order, for stable projection
}

// NewContainer creates a Container with the given top-level
// declaration and no definitions. Use Insert (or Builder) to populate
// it before handing it to codec.Decode/codec.Encode.
func NewContainer(top Declaration) *Container {
	return &Container{
		declaration: top,
		defs:        make(map[Declaration]Definition),
	}
}

// TopDeclaration returns the declaration of the value this container
// describes.
func (c *Container) TopDeclaration() Declaration {
	return c.declaration
}

// Definition looks up a user-defined declaration's structural
// description. The bool is false when name is not present in the
// definitions map; primitive names are never stored there, so they
// also report false and callers check IsPrimitive first.
func (c *Container) Definition(name Declaration) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Insert adds or replaces a definition under name, appending to the
// insertion-order index the first time name is seen. This is a
// builder-only operation: a Container handed to codec.Decode/codec.Encode
// must not be mutated concurrently with those calls.
func (c *Container) Insert(name Declaration, def Definition) {
	if _, exists := c.defs[name]; !exists {
		c.order = append(c.order, name)
	}
	c.defs[name] = def
}

// Definitions returns the (name, Definition) pairs in insertion order.
// Order here carries no wire meaning (spec: "Order of insertion in the
// definitions map is not semantically significant") but gives
// schemajson a stable, reproducible projection order.
func (c *Container) Definitions() []DefinitionEntry {
	out := make([]DefinitionEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, DefinitionEntry{Name: name, Definition: c.defs[name]})
	}
	return out
}

// DefinitionEntry pairs a declaration name with its definition, as
// returned by Container.Definitions.
type DefinitionEntry struct {
	Name       Declaration
	Definition Definition
}

// WellFormed reports whether every declaration transitively reachable
// from the top-level declaration is either a primitive or present in
// the definitions map. A Container with a dangling reference is
// ill-formed; codec.Decode/codec.Encode's policy on encountering one
// mid-walk is defined by package codec (UnknownDeclaration recovery),
// but callers may use WellFormed to reject a broken schema up front.
func (c *Container) WellFormed() (missing []Declaration, ok bool) {
	seen := map[Declaration]bool{}
	var walk func(d Declaration)
	walk = func(d Declaration) {
		if IsPrimitive(d) || seen[d] {
			return
		}
		seen[d] = true
		def, exists := c.defs[d]
		if !exists {
			missing = append(missing, d)
			return
		}
		switch def.Kind {
		case KindSequence:
			walk(def.Elements)
		case KindTuple:
			for _, e := range def.TupleElements {
				walk(e)
			}
		case KindEnum:
			for _, v := range def.Variants {
				walk(v.Declaration)
			}
		case KindStruct:
			switch def.StructFields.Kind {
			case NamedFields:
				for _, f := range def.StructFields.Named {
					walk(f.Declaration)
				}
			case UnnamedFields:
				for _, e := range def.StructFields.Unnamed {
					walk(e)
				}
			}
		}
	}
	walk(c.declaration)
	return missing, len(missing) == 0
}
