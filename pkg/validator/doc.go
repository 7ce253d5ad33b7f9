// Package validator provides small, declarative validation rules that collect
// field-level failures into a single error value.
//
// A Rule couples a Check function with translation-friendly error metadata.
// Apply evaluates rules in order and returns ValidationErrors (which implements
// error) when at least one rule fails, so callers can surface every problem
// with a request at once instead of stopping at the first.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("endpoint", c.Endpoint),
//	    validator.RequiredString("keys.auth", c.Keys.Auth),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// The package is stateless and safe for concurrent use.
package validator
