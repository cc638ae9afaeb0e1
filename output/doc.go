// Package output implements a deferred-value propagation algebra for an
// infrastructure-as-code runtime.
//
// An Output is a lazy, asynchronous container for a value that may still be
// computed by an external resource provider. It carries three pieces of
// metadata alongside the value: whether it is known yet (knownness, which
// depends on the current dry-run/apply phase), whether it must be treated
// as confidential (secrecy), and the set of resources that contributed to
// it (dependencies, used downstream to build a resource graph).
//
// Arbitrary Go values, Pending handles (such as a result channel wrapped
// with FromChannel), other Outputs, and nested slices/maps of any of those
// can be lifted into a single Output with Lift. A bare Go channel is not a
// Pending and is lifted as an ordinary known value. The resulting
// Output's metadata is the join of its inputs' metadata; its value resolves
// lazily. Apply transforms the value with a user function without the
// caller ever reasoning about the pending/unknown/secret dimensions
// directly.
package output
