// Package common holds the helpers shared by the vector service modules.
//
// It covers:
//   - Result construction: Success, Failure, FailWith
//   - Parameter extraction: GetNumber, GetNumbers, GetVector, GetTolerance
//   - Input validation: ValidateNumber, ValidateNumbers
//   - Error classification: ErrorKind
//
// Vector parameters are JSON arrays of numbers. A string holding a JSON
// array is accepted as well, since tool callers frequently quote them.
//
// Failed results carry an error_kind field (non_conformant, dimension,
// zero_vector, zero_angle, invalid_input, internal) and, for length errors,
// the expected and actual operand dimensions.
//
// Example Usage:
//
//	ops := &common.MathOps{Tolerance: tolerance.Default}
//	v, err := ops.GetVector(params, "v")
//	if err != nil {
//	    return common.FailWith(err)
//	}
package common
