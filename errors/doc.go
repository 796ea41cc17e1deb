/*
Package errors provides semantic error types for the movie catalog.

The package defines the failure scenarios of the ingestion and search paths
with specific types that can be checked using the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrUpstreamUnavailable  = errors.New("metadata provider unavailable")
	    ErrObjectBodyMissing    = errors.New("object body missing or malformed")
	    ErrInvalidInput         = errors.New("invalid input")
	    ErrPersistenceThrottled = errors.New("persistence throttled")
	    ErrPersistenceFatal     = errors.New("persistence failed")
	    ErrNoIndexMap           = errors.New("no index map found for type")
	)

Usage:

	err := saver.Save(ctx, movies)
	if err != nil {
	    if errors.IsPersistenceFatal(err) {
	        // retry budget exhausted, alert and stop the run
	    }
	    return err
	}

Two conditions are deliberately NOT errors: an enrichment miss (the record is
kept unenriched) and an unparseable search filter field (the constraint is
dropped). Both degrade instead of failing.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
