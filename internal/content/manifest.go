package content

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/medkb/internal/domain"
)

// ManifestFile is the name of the per-collection manifest.
const ManifestFile = "collection.yaml"

var validate = validator.New()

// Manifest describes one collection directory.
type Manifest struct {
	Name        string            `yaml:"name"                  validate:"required"`
	Kind        domain.Kind       `yaml:"kind"                  validate:"required"`
	Description string            `yaml:"description,omitempty"`
	Categories  []domain.Category `yaml:"categories"            validate:"required,min=1,dive,required"`
}

// Validate checks required manifest fields.
func (m Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(fields, ", "))
	}
	return nil
}

// Schema returns the collection schema declared by the manifest.
func (m Manifest) Schema() (domain.Schema, error) {
	return domain.NewSchema(m.Kind, m.Categories...)
}
