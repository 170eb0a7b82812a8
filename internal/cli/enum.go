package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.  The first
// allowed value is the default.
type enumValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func (e *enumValue) String() string {
	return e.value
}

func (e *enumValue) Set(v string) error {
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	e.value = v
	return nil
}

func (e *enumValue) Type() string {
	return "enum"
}

// EnumVar defines an enum flag on flags.  The usage string is suffixed with the
// allowed values.
func EnumVar(flags *pflag.FlagSet, name string, allowed []string, usage string) {
	flags.Var(&enumValue{value: allowed[0], allowed: allowed}, name,
		fmt.Sprintf("%s (one of: %s)", usage, strings.Join(allowed, ", ")))
}

// GetEnum returns the value of the enum flag name.
func GetEnum(flags *pflag.FlagSet, name string) (string, error) {
	flag := flags.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag %q not defined", name)
	}
	if _, ok := flag.Value.(*enumValue); !ok {
		return "", fmt.Errorf("flag %q is not an enum", name)
	}
	return flag.Value.String(), nil
}
