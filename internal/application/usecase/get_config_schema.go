package usecase

import (
	"context"
	"strings"

	"github.com/bnema/tiles/internal/application/port"
	"github.com/bnema/tiles/internal/domain/entity"
)

// GetConfigSchemaUseCase lists configuration keys for `tiles config keys`.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the listing.
type GetConfigSchemaInput struct {
	// Section keeps only keys of this section (case-insensitive). Empty keeps all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	// Sections lists section names in first-seen order.
	Sections []string
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	out := &GetConfigSchemaOutput{Keys: []entity.ConfigKeyInfo{}}
	seen := make(map[string]bool)

	for _, key := range uc.provider.GetSchema() {
		if input.Section != "" && !strings.EqualFold(key.Section, input.Section) {
			continue
		}
		out.Keys = append(out.Keys, key)
		if !seen[key.Section] {
			seen[key.Section] = true
			out.Sections = append(out.Sections, key.Section)
		}
	}
	return out, nil
}
