package model

// ErrorKind is the failure taxonomy surfaced to callers. Every failure
// crossing the engine boundary is converted into one of these kinds
// plus a human-readable detail string; the engine never panics and
// never lets a backend error escape unclassified.
type ErrorKind string

const (
	// ErrNoJSONFound: the generative backend output contained no JSON
	// object at all.
	ErrNoJSONFound ErrorKind = "no_json_found"

	// ErrMalformedJSON: a JSON-looking block was present but failed
	// structural parsing, or a mandatory field was missing.
	ErrMalformedJSON ErrorKind = "malformed_json"

	// ErrEmbeddingFailure: the embedding provider was unreachable or
	// returned a malformed vector.
	ErrEmbeddingFailure ErrorKind = "embedding_failure"

	// ErrGenerativeBackendFailure: the generative backend timed out,
	// returned a non-2xx status, or produced empty output.
	ErrGenerativeBackendFailure ErrorKind = "generative_backend_failure"

	// ErrEmptyCorpus: the index has zero entries and no fallback
	// corpus is configured. Fatal to the request, not the process.
	ErrEmptyCorpus ErrorKind = "empty_corpus"
)
