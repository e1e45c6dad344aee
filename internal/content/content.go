// Package content loads the site copy shown by the home and contact views.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// StatCount is the number of stats shown on the home page.
const StatCount = 3

// Profile is the person the portfolio presents.
type Profile struct {
	Name      string `yaml:"name" validate:"required"`
	Greeting  string `yaml:"greeting" validate:"required"`
	Role      string `yaml:"role" validate:"required"`
	Highlight string `yaml:"highlight" validate:"required"`
	Tagline   string `yaml:"tagline"`
	Image     string `yaml:"image" validate:"required"`
	Email     string `yaml:"email" validate:"omitempty,email"`
}

// Social is an outbound profile link.
type Social struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,url"`
	Icon  string `yaml:"icon" validate:"required"`
	Hover string `yaml:"hover"`
}

// Stat is one of the home page counters.
type Stat struct {
	Number string `yaml:"number" validate:"required"`
	Label  string `yaml:"label" validate:"required"`
	Icon   string `yaml:"icon" validate:"required"`
	Color  string `yaml:"color"`
}

// ContactCard is a contact channel shown beside the form.
type ContactCard struct {
	Title string `yaml:"title" validate:"required"`
	Info  string `yaml:"info" validate:"required"`
	Link  string `yaml:"link" validate:"required,url"`
	Icon  string `yaml:"icon" validate:"required"`
	Color string `yaml:"color"`
}

// Notices are the availability and response-time panels.
type Notices struct {
	Availability string `yaml:"availability" validate:"required"`
	ResponseTime string `yaml:"response_time" validate:"required"`
}

// CTA is the footer call to action on the home page.
type CTA struct {
	Title  string `yaml:"title" validate:"required"`
	Body   string `yaml:"body"`
	Button string `yaml:"button" validate:"required"`
}

// Content is the whole site copy.
type Content struct {
	Profile      Profile       `yaml:"profile" validate:"required"`
	Socials      []Social      `yaml:"socials" validate:"required,min=1,dive"`
	Follow       []Social      `yaml:"follow" validate:"dive"`
	Stats        []Stat        `yaml:"stats" validate:"len=3,dive"`
	ContactCards []ContactCard `yaml:"contact_cards" validate:"required,min=1,dive"`
	ContactIntro string        `yaml:"contact_intro"`
	Notices      Notices       `yaml:"notices" validate:"required"`
	CTA          CTA           `yaml:"cta" validate:"required"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("content: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields, link formats and the stat count.
func (c *Content) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (%d problems)", ErrInvalid, fe.Namespace(), fe.Tag(), len(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Default returns the embedded content.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// Load reads content from path on fs. An empty path returns the embedded
// default.
func Load(fs afero.Fs, path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
