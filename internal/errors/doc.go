// Package errors is the structured error type shared by every layer of tinker-api.
//
// An Error carries a Code, a user facing Message, an optional Cause and a Meta map
// with the identifiers needed to render an actionable message (aoid, ql, range
// bounds, profile id).
//
// Repositories return NotFound/AlreadyExists/Internal. Orchestrators validate input
// with a ValidationBuilder and translate engine errors:
//
//	if interpolation.IsOutOfRange(err) {
//	    return nil, errors.WrapWithCode(err, errors.CodeOutOfRange, "quality level not covered").
//	        WithMeta("aoid", aoid).
//	        WithMeta("ql", ql)
//	}
//
// Handlers hand the result to ToGRPCError, which turns Meta into a
// google.rpc.ErrorInfo detail. Clients reverse it with FromGRPCError.
package errors
