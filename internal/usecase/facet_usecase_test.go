package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/pkg/errors"
	"github.com/aqarview/geosearch/internal/usecase"
)

func TestFacetUseCase(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("property types pass through", func(t *testing.T) {
		mockListing := &MockListingRepository{}
		mockListing.On("DistinctPropertyTypes", ctx, "شق").Return([]string{"شقة"}, nil)

		uc := usecase.NewFacetUseCase(mockListing, &MockAmenityRepository{}, logger)
		options, err := uc.PropertyTypes(ctx, "شق")
		require.NoError(t, err)
		assert.Equal(t, []string{"شقة"}, options)
	})

	t.Run("school genders merge predefined with store extras", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		mockAmenity.On("DistinctSchoolGenders", ctx, "").Return([]string{"mixed"}, nil)

		uc := usecase.NewFacetUseCase(&MockListingRepository{}, mockAmenity, logger)
		options, err := uc.SchoolGenders(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"boys", "girls", "both", "mixed"}, options)
	})

	t.Run("search term narrows predefined options", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		mockAmenity.On("DistinctSchoolLevels", ctx, "mid").Return([]string{}, nil)

		uc := usecase.NewFacetUseCase(&MockListingRepository{}, mockAmenity, logger)
		options, err := uc.SchoolLevels(ctx, "mid")
		require.NoError(t, err)
		assert.Equal(t, []string{"middle"}, options)
	})

	t.Run("amenity points validate the category", func(t *testing.T) {
		uc := usecase.NewFacetUseCase(&MockListingRepository{}, &MockAmenityRepository{}, logger)

		_, err := uc.AmenityPoints(ctx, "hospital", domain.AmenityFilter{})
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidAmenityCategory.Code, appErr.Code)
	})

	t.Run("amenity points forward the filter", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		filter := domain.AmenityFilter{Gender: "girls", Level: "elementary"}
		mockAmenity.On("GetByCategory", ctx, domain.AmenitySchool, filter).
			Return([]domain.AmenityPoint{{ID: 1, Name: "مدرسة"}}, nil)

		uc := usecase.NewFacetUseCase(&MockListingRepository{}, mockAmenity, logger)
		points, err := uc.AmenityPoints(ctx, "school", filter)
		require.NoError(t, err)
		assert.Len(t, points, 1)
	})
}
