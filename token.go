package anybox

import "reflect"

// Token is a stable, comparable identity for a concrete Go type, used by the
// container's type checks. Tokens for the same type always compare equal with
// ==; tokens for distinct types never do. The zero Token is the identity of
// "no type" and is what an empty Box reports.
//
// Token wraps the runtime's canonical type representation, so it costs one
// word and needs no registration step.
type Token struct {
	rt reflect.Type
}

// TokenFor returns the identity token for T. The result depends only on T,
// never on a container or value.
func TokenFor[T any]() Token {
	return Token{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsZero reports whether t is the empty-container token.
func (t Token) IsZero() bool {
	return t.rt == nil
}

// String returns the Go name of the identified type, or "<empty>" for the
// zero token.
func (t Token) String() string {
	if t.rt == nil {
		return "<empty>"
	}
	return t.rt.String()
}
