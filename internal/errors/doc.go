// Package errors provides structured errors for rpg-sheet.
//
// Every error carries a Code (mapped onto gRPC status codes at the transport
// boundary) and, for rules-engine outcomes, a Reason that names the rule that
// rejected the request:
//
//	err := errors.AttributeBudgetExceeded(70, 71)
//	errors.HasReason(err, errors.ReasonAttributeBudgetExceeded) // true
//	errors.IsFailedPrecondition(err)                            // true
//
// Business-rule rejections (budgets, bad index) and programmer-error
// preconditions (unknown class, malformed check request) are both returned as
// values; nothing in the engine panics on expected input.
//
// Metadata travels with the error and survives Wrap:
//
//	err := errors.CharacterNotFound(3, 2)
//	errors.GetMeta(err)["index"] // 3
//
// Validation of configuration and request structs uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("port", cfg.GRPCPort, 1, 65535, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
