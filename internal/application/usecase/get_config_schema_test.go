package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiles/internal/application/port/mocks"
	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/domain/entity"
)

func schemaFixture() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.mode",
			Type:        "string",
			Default:     "registry",
			Description: "Panel tree representation",
			Values:      []string{"registry", "tree"},
			Section:     "Layout",
		},
		{
			Key:         "appearance.padding",
			Type:        "int",
			Default:     "1",
			Description: "Horizontal padding inside each panel, in cells",
			Range:       "0-4",
			Section:     "Appearance",
		},
		{
			Key:         "keys.close",
			Type:        "[]string",
			Default:     "x",
			Description: "Close the focused panel",
			Section:     "Keys",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaFixture())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, "layout.mode", result.Keys[0].Key)
		assert.Equal(t, []string{"Layout", "Appearance", "Keys"}, result.Sections)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by section", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaFixture())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "appearance"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)

		key := result.Keys[0]
		assert.Equal(t, "appearance.padding", key.Key)
		assert.Equal(t, "0-4", key.Range)
		assert.Empty(t, key.Values)
		assert.Equal(t, []string{"Appearance"}, result.Sections)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result.Keys)
		assert.Empty(t, result.Keys)
		assert.Empty(t, result.Sections)
	})
}
