// Package solver drains a grid.Traversal into a Result for callers that want
// a finished answer rather than a lazy sequence.
//
// What:
//
//   - Solve pulls words until the traversal is exhausted, the result cap is
//     reached, or the context is done.
//   - WithUnique collapses words spelled along several paths into the first
//     path found. The traversal itself never deduplicates.
//   - Each call is wrapped in an OpenTelemetry span and logged at debug level
//     through the configured zerolog.Logger.
//
// Options:
//
//   - WithLimit(n)          stop after n collected words (0 = no cap).
//   - WithUnique(b)         keep only the first path for each word.
//   - WithMinWordLength(n)  forwarded to grid.WithMinWordLength.
//   - WithMaxPathLength(n)  forwarded to grid.WithMaxPathLength.
//   - WithLogger(l)         logger for the summary event; default zerolog.Nop().
//
// Errors:
//
//   - ErrGridNil            g is nil.
//   - ErrDictionaryNil      d is nil.
//   - context errors        ctx was cancelled or timed out between pulls.
package solver
