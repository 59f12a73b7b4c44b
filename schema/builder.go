package schema

// Builder hand-constructs a Container one definition at a time.
//
// Deriving a schema from a Go type declaration is out of scope for
// this module (see package doc); Builder exists so tests, the
// schemajson package, and CLI callers can author a schema directly,
// in the same fluent, chained style the teacher corpus uses for
// building documents by hand (compare bson.Map/bson.Slice/bson.Pair
// literals).
type Builder struct {
	c *Container
}

// NewBuilder starts building a Container whose top-level declaration
// is top.
func NewBuilder(top Declaration) *Builder {
	return &Builder{c: NewContainer(top)}
}

// Define adds name -> def to the container being built and returns
// the Builder for chaining.
func (b *Builder) Define(name Declaration, def Definition) *Builder {
	b.c.Insert(name, def)
	return b
}

// Container returns the Container built so far. The returned
// Container is ready for use by codec.Decode/codec.Encode; Builder
// may keep being used afterward, but mutating it after handing the
// Container to a concurrent codec call is unsafe (see Container.Insert).
func (b *Builder) Container() *Container {
	return b.c
}
