// Package result provides Result[T, E], a value holding either a success
// payload of type T or an error payload of type E, and Void[E], the same
// thing for operations that succeed without a value.
//
// A Result is built once with Ok or Err and never changes afterwards;
// combinators derive new values from it:
// - Ok/Err, OkVoid/ErrVoid: construct results
// - IsOk/IsErr: inspect the discriminant
// - Unwrap/UnwrapErr/Expect/ExpectErr: extract, terminating the process on misuse
// - UnwrapOr/UnwrapOrElse/UnwrapOrDefault: extract with a fallback
// - Map/MapErr/MapOr/MapOrElse/AndThen/And/Or/OrElse/Flatten: derive new results
// - Inspect/InspectErr: side effects without changing the result
// - Try/Check with Handle: early return from a function on the first failure
//
// Calling an extraction method in the wrong state is a programming error,
// not a represented failure. The process writes a diagnostic to standard
// error and exits; it cannot be recovered.
//
// Extended combinator groups can be removed from the build with tags:
// result_minimal drops all of them, and result_noextract,
// result_notransform, result_noandor, result_noinspect, result_nocontains,
// result_noflatten and result_nooption drop one group each.
package result
