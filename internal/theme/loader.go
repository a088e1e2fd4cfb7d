package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

var (
	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	tokenNamePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// theme files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Load reads a theme file from disk, validates it, and returns the theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glazeerrors.NewParseError(path, 0, err)
	}

	var th Theme
	if err := yaml.Unmarshal(data, &th); err != nil {
		return nil, glazeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&th); err != nil {
		return nil, err
	}

	return &th, nil
}

// Validate checks a theme against the token-table contract. Built-in presets
// pass by construction; themes from packs go through here before use.
func Validate(th *Theme) error {
	if err := validatorInstance().Struct(th); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			msg := fmt.Sprintf("field %s failed rule %q", first.Namespace(), first.Tag())
			return glazeerrors.NewConfigurationError(themeLabel(th), msg, err)
		}
		return glazeerrors.NewConfigurationError(themeLabel(th), err.Error(), err)
	}
	return nil
}

func themeLabel(th *Theme) string {
	if th.Name == "" {
		return "theme"
	}
	return "theme " + th.Name
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

// Lookup resolves a theme by name: built-in presets first, then any extra
// sources supplied by the caller (theme packs, loaded files).
func Lookup(name string, extra ...map[string]*Theme) (*Theme, error) {
	if th, ok := Preset(name); ok {
		return th, nil
	}
	for _, source := range extra {
		if th, ok := source[name]; ok {
			return th, nil
		}
	}
	return nil, glazeerrors.NewLookupError("theme", name)
}

// DisplayName renders a theme reference for logs and CLI output.
func DisplayName(th *Theme) string {
	if th == nil {
		return "<nil>"
	}
	return strings.TrimSpace(th.Name)
}
