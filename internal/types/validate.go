package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; the validator instance caches struct metadata
// and is safe for concurrent use.
var validate = validator.New()

// Validate checks that the profile satisfies the boundary contract the engine
// relies on (mandatory fields present, enum-like fields in range). Callers are
// expected to run this before handing the profile to the scorer; the engine
// itself performs no shape validation per call.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// Validate checks that the job satisfies the boundary contract the engine relies on.
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}
	return nil
}
