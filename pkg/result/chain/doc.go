// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result[T, E] values of one type.
//
// - Start/FromValue: create a Chain
// - Then/Map/Validate: continue on success, skip on failure
// - Recover: continue on failure with a replacement result
// - RepeatUntil/While: loop a step while the chain succeeds
// - Or/And: pick among several chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Steps that change the value type belong to package result (Map, AndThen);
// a Chain keeps T and E fixed.
package chain
