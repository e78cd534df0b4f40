// Package errors provides structured error handling for the pokeforge-api project.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the REST boundary
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("invalid pokemon id: %d", id)
//
// Adding metadata:
//
//	err := errors.NotFound("pokemon not found").
//	    WithMeta("pokemon_id", id)
//
// Wrapping errors:
//
//	if err := repo.List(ctx); err != nil {
//	    return errors.Wrap(err, "failed to list created pokemon")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("creatorName", input.CreatorName, vb)
//	errors.ValidateRange("pokemonId", input.PokemonID, 1, 493, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, Internal)
//   - Include relevant ids in metadata
//   - Wrap database errors with context
//
// Service layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map error codes to HTTP statuses
//   - Extract user-friendly messages
//   - Log internal errors for debugging
package errors
