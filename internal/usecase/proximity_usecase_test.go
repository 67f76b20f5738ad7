package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/pkg/errors"
	"github.com/aqarview/geosearch/internal/usecase"
)

// MockAmenityRepository is a mock of AmenityRepository
type MockAmenityRepository struct {
	mock.Mock
}

func (m *MockAmenityRepository) GetByCategory(ctx context.Context, category domain.AmenityCategory, filter domain.AmenityFilter) ([]domain.AmenityPoint, error) {
	args := m.Called(ctx, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AmenityPoint), args.Error(1)
}

func (m *MockAmenityRepository) DistinctSchoolGenders(ctx context.Context, search string) ([]string, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAmenityRepository) DistinctSchoolLevels(ctx context.Context, search string) ([]string, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func ptrString(s string) *string { return &s }

// At 30 km/h one minute of travel covers 0.5 km, and 0.01 degrees of
// latitude is roughly 1.1 km. The fixtures below are spaced off these
// two facts.
func TestProximityUseCase_Admit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	base := domain.Listing{ID: "near", Lat: 24.7000, Lon: 46.7000}
	far := domain.Listing{ID: "far", Lat: 24.9000, Lon: 46.7000}

	t.Run("no active requirement passes through", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		out, err := uc.Admit(ctx, []domain.Listing{base, far}, domain.DefaultFilterState())
		require.NoError(t, err)
		assert.Len(t, out, 2)
		mockAmenity.AssertNotCalled(t, "GetByCategory")
	})

	t.Run("school gender and level narrow candidates before distance", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		schools := []domain.AmenityPoint{
			// Girls elementary right next to "near".
			{ID: 1, Name: "مدرسة ١", Lat: 24.7050, Lon: 46.7000, Gender: ptrString("girls"), Level: ptrString("elementary")},
			// Boys school even closer; must not count for a girls filter.
			{ID: 2, Name: "مدرسة ٢", Lat: 24.7010, Lon: 46.7000, Gender: ptrString("boys"), Level: ptrString("elementary")},
			// Girls high school near "far"; wrong level.
			{ID: 3, Name: "مدرسة ٣", Lat: 24.9010, Lon: 46.7000, Gender: ptrString("girls"), Level: ptrString("high")},
		}
		mockAmenity.On("GetByCategory", ctx, domain.AmenitySchool, domain.AmenityFilter{}).
			Return(schools, nil)

		filters := domain.DefaultFilterState()
		filters.SchoolGender = "Girls"
		filters.SchoolLevel = "elementary"

		out, err := uc.Admit(ctx, []domain.Listing{base, far}, filters)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "near", out[0].ID)
	})

	t.Run("active requirement with zero candidates rejects everything", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		mockAmenity.On("GetByCategory", ctx, domain.AmenitySchool, domain.AmenityFilter{}).
			Return([]domain.AmenityPoint{}, nil)

		filters := domain.DefaultFilterState()
		filters.SchoolGender = "Girls"

		out, err := uc.Admit(ctx, []domain.Listing{base, far}, filters)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("unplaced listing cannot satisfy a requirement", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		mockAmenity.On("GetByCategory", ctx, domain.AmenityMosque, domain.AmenityFilter{}).
			Return([]domain.AmenityPoint{{ID: 1, Name: "جامع", Lat: 24.7000, Lon: 46.7000}}, nil)

		filters := domain.DefaultFilterState()
		filters.NearMosques = true

		unplaced := domain.Listing{ID: "unplaced", Lat: 0, Lon: 0}
		out, err := uc.Admit(ctx, []domain.Listing{base, unplaced}, filters)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "near", out[0].ID)
	})

	t.Run("metro threshold is tight", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		// One station ~0.45 km from "near": one minute at 30 km/h.
		mockAmenity.On("GetByCategory", ctx, domain.AmenityMetro, domain.AmenityFilter{}).
			Return([]domain.AmenityPoint{{ID: 1, Name: "محطة", Lat: 24.7040, Lon: 46.7000}}, nil)

		filters := domain.DefaultFilterState()
		filters.NearMetro = true // MetroMaxMinutes defaults to 1

		out, err := uc.Admit(ctx, []domain.Listing{base, far}, filters)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "near", out[0].ID)
	})

	t.Run("university matched by normalized containment", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		universities := []domain.AmenityPoint{
			{ID: 1, Name: "جامعه الاميره نوره", Lat: 24.7100, Lon: 46.7000},
			{ID: 2, Name: "جامعة الملك سعود", Lat: 24.9100, Lon: 46.7000},
		}
		mockAmenity.On("GetByCategory", ctx, domain.AmenityUniversity, domain.AmenityFilter{}).
			Return(universities, nil)

		filters := domain.DefaultFilterState()
		filters.SelectedUniversity = "جامعة الأميرة نورة"

		out, err := uc.Admit(ctx, []domain.Listing{base, far}, filters)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "near", out[0].ID)
	})

	t.Run("amenity store failure surfaces", func(t *testing.T) {
		mockAmenity := &MockAmenityRepository{}
		uc := usecase.NewProximityUseCase(mockAmenity, logger, 30)

		mockAmenity.On("GetByCategory", ctx, domain.AmenitySchool, domain.AmenityFilter{}).
			Return(nil, errors.ErrDatabaseError)

		filters := domain.DefaultFilterState()
		filters.SchoolLevel = "middle"

		_, err := uc.Admit(ctx, []domain.Listing{base}, filters)
		assert.Equal(t, errors.ErrDatabaseError, err)
	})
}
