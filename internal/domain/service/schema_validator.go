package service

// SchemaValidator checks a candidate payload against its declared schema
// (struct tags on the input DTOs). It is a pure function of its input: no
// side effects, no I/O.
type SchemaValidator interface {
	// Validate returns nil when the payload is valid, otherwise a list of
	// human-readable violations. It runs to completion and collects every
	// violation rather than failing fast, so the error response names all
	// problems at once.
	Validate(payload any) []string
}
