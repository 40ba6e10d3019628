// Package errors provides structured error handling for arcdex.
//
// Errors carry a code, a user-presentable message, optional metadata,
// and the wrapped cause:
//
//	err := errors.NotFoundf("weapon %q not found", token)
//	err := errors.InvalidArgument("unrecognized filter").WithMeta("token", token)
//
// Wrapping preserves the code of an already-classified error:
//
//	if err := store.Load(dir); err != nil {
//	    return errors.Wrap(err, "failed to load dataset")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // expected miss, render a user-facing message
//	}
//
// Layer guidelines:
//   - dataset: DataLoss for unreadable/unparsable documents, fatal at startup
//   - orchestrator: InvalidArgument for bad tokens, NotFound for missed lookups
//   - front ends: map codes to HTTP statuses or short chat notices; never
//     surface Cause to the end user
package errors
