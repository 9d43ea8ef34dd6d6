package generator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for Option records.
var validate *validator.Validate

var (
	shortNamePattern = regexp.MustCompile(`^\w$`)
	longNamePattern  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	argNamePattern   = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)
)

func init() {
	validate = validator.New()

	for name, pattern := range map[string]*regexp.Regexp{
		"shortname": shortNamePattern,
		"longname":  longNamePattern,
		"argname":   argNamePattern,
	} {
		p := pattern
		err := validate.RegisterValidation(name, func(fl validator.FieldLevel) bool {
			return p.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(err)
		}
	}
}

// Validate checks the extracted model before code generation. Beyond the
// per-field rules declared on Option it rejects duplicate short names: a
// duplicate would let the later option's table entries overwrite the earlier
// one's while its dispatch arm stays unreachable.
func Validate(doc *Document) error {
	seen := make(map[string]int, len(doc.Options))
	for i := range doc.Options {
		o := &doc.Options[i]
		if err := validate.Struct(o); err != nil {
			return fmt.Errorf("option -%s (--%s): %w", o.Short, o.Long, err)
		}
		if prev, ok := seen[o.Short]; ok {
			return fmt.Errorf("option -%s declared twice (positions %d and %d)", o.Short, prev+1, i+1)
		}
		seen[o.Short] = i
	}
	return nil
}
