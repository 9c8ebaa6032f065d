package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"conecta/internal/errors"
)

// Field is a value that is either supplied by the caller or left untouched.
type Field[T any] struct {
	Value T
	Set   bool
}

// Some returns a supplied Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// ProviderPatch is a partial update of a provider; only Set fields change.
type ProviderPatch struct {
	Name             Field[string]
	ProviderType     Field[string]
	ShortDescription Field[string]
	Phone            Field[string]
	Address          Field[string]
	City             Field[string]
	Latitude         Field[*float64]
	Longitude        Field[*float64]
	Available        Field[bool]
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProviderPatch) IsEmpty() bool {
	return !p.Name.Set && !p.ProviderType.Set && !p.ShortDescription.Set &&
		!p.Phone.Set && !p.Address.Set && !p.City.Set &&
		!p.Latitude.Set && !p.Longitude.Set && !p.Available.Set
}

// Apply copies the supplied fields onto provider.
func (p *ProviderPatch) Apply(provider *Provider) {
	applyField(&provider.Name, p.Name)
	applyField(&provider.ProviderType, p.ProviderType)
	applyField(&provider.ShortDescription, p.ShortDescription)
	applyField(&provider.Phone, p.Phone)
	applyField(&provider.Address, p.Address)
	applyField(&provider.City, p.City)
	applyField(&provider.Latitude, p.Latitude)
	applyField(&provider.Longitude, p.Longitude)
	applyField(&provider.Available, p.Available)
}

func applyField[T any](dst *T, f Field[T]) {
	if f.Set {
		*dst = f.Value
	}
}

// FieldErrors maps wire field names to the reason they were rejected.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}

	return strings.Join(parts, "; ")
}

// providerTextLimits caps text fields at their column widths, counted in characters.
var providerTextLimits = map[string]int{
	"nombre":            255,
	"tipo_proveedor":    50,
	"descripcion_corta": 500,
	"telefono":          30,
	"direccion":         255,
	"ciudad":            100,
}

// CheckTextLength reports whether value fits the named provider field.
// Fields without a limit always fit.
func CheckTextLength(name, value string) (string, bool) {
	limit, ok := providerTextLimits[name]
	if !ok || utf8.RuneCountInString(value) <= limit {
		return "", true
	}

	return fmt.Sprintf("must be at most %d characters", limit), false
}

type patchSetter func(p *ProviderPatch, raw json.RawMessage) error

// providerPatchSetters is the closed set of fields a partial update may touch.
var providerPatchSetters = map[string]patchSetter{
	"nombre": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.Name, raw, "nombre", true)
	},
	"tipo_proveedor": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.ProviderType, raw, "tipo_proveedor", true)
	},
	"descripcion_corta": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.ShortDescription, raw, "descripcion_corta", false)
	},
	"telefono": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.Phone, raw, "telefono", true)
	},
	"direccion": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.Address, raw, "direccion", false)
	},
	"ciudad": func(p *ProviderPatch, raw json.RawMessage) error {
		return setText(&p.City, raw, "ciudad", false)
	},
	"latitud": func(p *ProviderPatch, raw json.RawMessage) error {
		return setCoordinate(&p.Latitude, raw, 90)
	},
	"longitud": func(p *ProviderPatch, raw json.RawMessage) error {
		return setCoordinate(&p.Longitude, raw, 180)
	},
	"disponible": func(p *ProviderPatch, raw json.RawMessage) error {
		if isNull(raw) {
			return errors.New("must be a boolean")
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("must be a boolean")
		}
		p.Available = Some(v)

		return nil
	},
}

// ParseProviderPatch builds a patch from raw JSON members keyed by wire field name.
// Unknown names and ill-typed values are reported together as FieldErrors.
func ParseProviderPatch(fields map[string]json.RawMessage) (*ProviderPatch, error) {
	patch := &ProviderPatch{}
	problems := FieldErrors{}

	for name, raw := range fields {
		setter, ok := providerPatchSetters[name]
		if !ok {
			problems[name] = "unknown field"

			continue
		}
		if err := setter(patch, raw); err != nil {
			problems[name] = err.Error()
		}
	}

	if len(problems) > 0 {
		return nil, problems
	}

	return patch, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func setText(dst *Field[string], raw json.RawMessage, name string, required bool) error {
	if isNull(raw) {
		return errors.New("must be a string")
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.New("must be a string")
	}
	if required && strings.TrimSpace(v) == "" {
		return errors.New("must not be blank")
	}
	if problem, ok := CheckTextLength(name, v); !ok {
		return errors.New(problem)
	}
	*dst = Some(v)

	return nil
}

func setCoordinate(dst *Field[*float64], raw json.RawMessage, bound float64) error {
	if isNull(raw) {
		*dst = Some[*float64](nil)

		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.New("must be a number or null")
	}
	if v < -bound || v > bound {
		return errors.Errorf("must be between %g and %g", -bound, bound)
	}
	*dst = Some(&v)

	return nil
}
