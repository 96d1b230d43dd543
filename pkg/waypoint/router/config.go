package router

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// TableConfig is the TOML form of a route table.
//
//	scheme = "myapp"
//
//	[[route]]
//	segment  = "list"
//	screen   = 2
//	title    = "list.title"
//	requires = ["id"]
type TableConfig struct {
	Scheme string        `toml:"scheme"`
	Routes []RouteConfig `toml:"route" validate:"required,min=1,dive"`
}

// RouteConfig maps one segment (or glob pattern, when Pattern is set) to a screen.
type RouteConfig struct {
	Segment  string   `toml:"segment"  validate:"required"`
	Screen   int      `toml:"screen"   validate:"gte=0"`
	Title    string   `toml:"title"`
	Requires []string `toml:"requires" validate:"dive,required"`
	Pattern  bool     `toml:"pattern"`
}

type configValidator struct {
	v *validator.Validate
	t ut.Translator
}

// nolint: gochecknoglobals
var tableValidator *configValidator

// nolint: gochecknoinits
func init() {
	var err error

	if tableValidator, err = newConfigValidator(); err != nil {
		panic(err)
	}
}

func newConfigValidator() (*configValidator, error) {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	translate, _ := uni.GetTranslator("en")
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("toml")
		if len(name) == 0 {
			name = fld.Name
		}

		return "'" + strings.SplitN(name, ",", 2)[0] + "'" // nolint: mnd
	})

	return &configValidator{v: validate, t: translate}, nil
}

func (c *configValidator) validate(conf *TableConfig) error {
	err := c.v.Struct(conf)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Translate(c.t)))
	}
	sort.Strings(messages)

	return errors.New(strings.Join(messages, ", "))
}

// ParseTableConfig decodes and validates a TOML route table.
func ParseTableConfig(data []byte) (*TableConfig, error) {
	var conf TableConfig

	meta, err := toml.Decode(string(data), &conf)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &ConfigError{Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}

	if err := tableValidator.validate(&conf); err != nil {
		return nil, &ConfigError{Err: err}
	}

	return &conf, nil
}

// LoadTable reads, validates and compiles the route table at path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	table, err := ParseTable(data)
	if err != nil {
		var configErr *ConfigError
		if errors.As(err, &configErr) {
			configErr.Path = path
		}
		return nil, err
	}

	return table, nil
}

// ParseTable validates and compiles a route table from TOML bytes.
func ParseTable(data []byte) (*Table, error) {
	conf, err := ParseTableConfig(data)
	if err != nil {
		return nil, err
	}

	return NewTable(*conf)
}
