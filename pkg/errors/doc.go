// Package errors provides structured error types for better observability
// and programmatic error handling across the generator.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidBinding,
//	    "PVC variable has no claim separator",
//	    map[string]any{
//	        "variable": "PVC_noseparator",
//	    },
//	)
package errors
