package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/shelf/internal/product"
)

// Modal titles for the edit form.
const (
	FormTitleAdd  = "Add a product"
	FormTitleEdit = "Edit a product"
)

// Field identifies an editable form field.
type Field int

const (
	FieldName Field = iota
	FieldPrice
	FieldDescription
	FieldImage
)

// FormFields lists the editable fields in tab order.
var FormFields = []Field{FieldName, FieldPrice, FieldDescription, FieldImage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldPrice:
		return "Price"
	case FieldDescription:
		return "Description"
	case FieldImage:
		return "Image"
	default:
		return "?"
	}
}

// FormValues is the raw text of every form field. ID is read-only and
// empty when adding.
type FormValues struct {
	ID          string
	Name        string
	Price       string
	Description string
	Image       string
}

// Get returns the value of field f.
func (v FormValues) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldPrice:
		return v.Price
	case FieldDescription:
		return v.Description
	case FieldImage:
		return v.Image
	}
	return ""
}

// Set replaces the value of field f.
func (v *FormValues) Set(f Field, value string) {
	switch f {
	case FieldName:
		v.Name = value
	case FieldPrice:
		v.Price = value
	case FieldDescription:
		v.Description = value
	case FieldImage:
		v.Image = value
	}
}

// FillForm produces form values from p. A zero id or zero price leaves the
// field empty.
func FillForm(p product.Product) FormValues {
	v := FormValues{
		ID:          p.ID.String(),
		Name:        p.Title,
		Description: p.Description,
		Image:       p.Image,
	}
	if p.Price != 0 {
		v.Price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	return v
}

// FormState defines the inputs needed to render the edit modal.
type FormState struct {
	Values FormValues
	Focus  Field
	Width  int
}

// Editing reports whether the form edits an existing product.
func (s FormState) Editing() bool {
	return s.Values.ID != ""
}

// Title returns the modal title for the current mode.
func (s FormState) Title() string {
	if s.Editing() {
		return FormTitleEdit
	}
	return FormTitleAdd
}

// Form renders the edit modal with the focused field marked.
func Form(state FormState) string {
	lines := []string{headerStyle.Render(state.Title()), ""}
	if state.Editing() {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %-12s %s", "ID", state.Values.ID)))
	}
	for _, f := range FormFields {
		marker := "  "
		value := state.Values.Get(f)
		label := fmt.Sprintf("%-12s", f.String())
		if f == state.Focus {
			marker = headerStyle.Render("> ")
			value += "_"
			label = titleStyle.Render(label)
		}
		lines = append(lines, marker+label+" "+value)
	}
	lines = append(lines, "", mutedStyle.Render("tab: next field  enter: save  esc: cancel"))

	style := modalStyle
	if state.Width > 4 {
		style = style.Width(state.Width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}
