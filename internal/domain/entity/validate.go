package entity

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared rule engine. The rules themselves are declared as
// struct tags on the entities in this package.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldViolation is a single schema rule an entity failed.
type FieldViolation struct {
	Field string `json:"field"`           // Path of the offending field, e.g. "Location.Latitude".
	Rule  string `json:"rule"`            // Name of the violated rule, e.g. "latitude", "oneof".
	Param string `json:"param,omitempty"` // Rule parameter, e.g. "slow medium fast fiber".
}

// ValidationError reports every schema rule an entity failed, not only the
// first one. Rows carrying such entities are dropped, never partially exposed.
type ValidationError struct {
	Entity     string           // Which entity kind failed, "cafe" or "rating".
	Violations []FieldViolation // All failed rules.
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Rule)
	}

	return fmt.Sprintf("%s failed schema validation: %s", e.Entity, strings.Join(parts, "; "))
}

// Validate checks the cafe against the declared schema rules.
func (c *Cafe) Validate() error {
	return runValidation("cafe", c)
}

// Validate checks the rating against the declared schema rules.
func (r *Rating) Validate() error {
	return runValidation("rating", r)
}

// Validate checks the geo criterion bounds.
func (g *GeoFilter) Validate() error {
	return runValidation("geo filter", g)
}

func runValidation(entityName string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.InvalidValidationError: programming error, not input error
		return err
	}

	out := &ValidationError{Entity: entityName}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field: trimNamespace(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}

// trimNamespace drops the leading struct name from a validator namespace, so
// "Cafe.Location.Latitude" reads "Location.Latitude".
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return ns
}
