package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Phase is the position of the form in its submission cycle. A single enum
// keeps submitting and submitted mutually exclusive.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Field names accepted by Set, in form order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists every form field in display order.
var Fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Form is the controlled form state.
type Form struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// Value returns the current value of field.
func (f Form) Value(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	}
	return ""
}

var (
	// ErrUnknownField is returned by Set for names outside Fields.
	ErrUnknownField = errors.New("contact: unknown field")
	// ErrBusy is returned by Submit outside the idle phase.
	ErrBusy = errors.New("contact: submission already in progress")
)

// ValidationError lists the fields a submission was missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	titler := cases.Title(language.English)
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = titler.String(f)
	}
	return "contact: missing " + strings.Join(names, ", ")
}

// Has reports whether field is among the missing fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) remove(field string) {
	kept := e.Fields[:0]
	for _, f := range e.Fields {
		if f != field {
			kept = append(kept, f)
		}
	}
	e.Fields = kept
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	return v
}

// Validate checks that every field is present.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("contact: validate: %w", err)
	}
	missing := make([]string, len(verrs))
	for i, fe := range verrs {
		missing[i] = fe.Field()
	}
	return &ValidationError{Fields: missing}
}

// Machine drives the form through idle, submitting and submitted. It is not
// safe for concurrent use; the view owns it and only touches it from its
// session loop.
type Machine struct {
	phase   Phase
	form    Form
	invalid *ValidationError
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Form returns a copy of the form.
func (m *Machine) Form() Form { return m.form }

// Invalid returns the result of the last failed submit, or nil.
func (m *Machine) Invalid() *ValidationError { return m.invalid }

// SubmitDisabled reports whether the submit control must be disabled.
func (m *Machine) SubmitDisabled() bool { return m.phase == PhaseSubmitting }

// Set commits a field value. Edits are accepted in every phase. A non-empty
// value clears the field's missing flag.
func (m *Machine) Set(field, value string) error {
	switch field {
	case FieldName:
		m.form.Name = value
	case FieldEmail:
		m.form.Email = value
	case FieldSubject:
		m.form.Subject = value
	case FieldMessage:
		m.form.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if value != "" && m.invalid != nil {
		m.invalid.remove(field)
		if len(m.invalid.Fields) == 0 {
			m.invalid = nil
		}
	}
	return nil
}

// Submit validates the form and, when complete, enters submitting. Outside
// idle it returns ErrBusy and changes nothing.
func (m *Machine) Submit() error {
	if m.phase != PhaseIdle {
		return ErrBusy
	}
	if err := m.form.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			m.invalid = &ValidationError{Fields: append([]string(nil), verr.Fields...)}
		}
		return err
	}
	m.invalid = nil
	m.phase = PhaseSubmitting
	return nil
}

// Complete moves submitting to submitted. It reports whether it did.
func (m *Machine) Complete() bool {
	if m.phase != PhaseSubmitting {
		return false
	}
	m.phase = PhaseSubmitted
	return true
}

// Reset moves submitted back to idle with empty fields. It reports whether
// it did.
func (m *Machine) Reset() bool {
	if m.phase != PhaseSubmitted {
		return false
	}
	m.phase = PhaseIdle
	m.form = Form{}
	return true
}
