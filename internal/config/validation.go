package config

// Validate checks that every enum value in d is known. An empty linter
// strictness is valid and means "same as strictness".
func Validate(d *Defaults) error {
	var errs []ValidationError

	if !d.Compiler.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "compiler",
			Message: "must be one of: clang, gcc",
			Value:   d.Compiler,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !d.Strictness.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "strictness",
			Message: "must be one of: loose, strict, strictest",
			Value:   d.Strictness,
			Wrapped: ErrInvalidConfig,
		})
	}
	if d.LinterStrictness != "" && !d.LinterStrictness.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "linter_strictness",
			Message: "must be empty or one of: loose, strict, strictest",
			Value:   d.LinterStrictness,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !d.Color.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "color",
			Message: "must be one of: auto, always, never",
			Value:   d.Color,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
