// Package example demonstrates docstring rendering for doc2md tests.
//
// The prose above the first recognized section label passes through
// verbatim; everything below it is classified.
//
// Examples:
//
//	$ doc2md ./testdata/example
//
// Notes:
//
// Section labels render as level-4 headings and command lines are
// fenced as bash.
package example

// Answer documents an exported constant.
const Answer = 42

// Greeter produces greeting messages.
//
// Examples:
//
//	>>> NewGreeter("go").Greet()
//
// Attributes:
//
//	Name: who the greeting addresses
type Greeter struct {
	// Name is included to verify field documentation.
	Name string
}

// NewGreeter constructs a Greeter.
//
// Args:
//
//	name: the greeting target
//
// Returns:
//
//	A Greeter whose messages address name.
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// Greet returns a friendly message.
//
// Examples:
//
//	>>> g.Greet()
//	'hello go'
func (g *Greeter) Greet() string {
	return "hello " + g.Name
}
