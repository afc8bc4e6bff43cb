// Package validator builds request validation out of small Rule values.
//
// Each rule pairs a Check func with the ValidationError reported when it
// fails. Apply runs every rule and aggregates the failures, so a handler can
// return all field problems of a request at once:
//
//	err := validator.Apply(
//	    validator.Required("firstname", in.Firstname),
//	    validator.MinLen("firstname", in.Firstname, 3),
//	    validator.ValidEmail("email", in.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // 422 with verrs as the field list
//	}
//
// ValidationErrors matches ErrValidationFailed with errors.Is.
package validator
