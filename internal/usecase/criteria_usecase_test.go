package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/usecase"
)

func TestCriteriaUseCase_ExtractFilters(t *testing.T) {
	uc := usecase.NewCriteriaUseCase(zap.NewNop())

	t.Run("nil criteria yields empty update", func(t *testing.T) {
		assert.Empty(t, uc.ExtractFilters(nil))
	})

	t.Run("school requirements map to facets", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			SchoolRequirements: &domain.SchoolRequirements{
				Required:           true,
				Gender:             "بنات",
				Levels:             []string{"المرحلة الابتدائية"},
				MaxDistanceMinutes: 10,
			},
		})

		assert.Equal(t, "Girls", update["school_gender"])
		assert.Equal(t, "elementary", update["school_level"])
		assert.Equal(t, 10, update["max_school_time"])
	})

	t.Run("gender tokens", func(t *testing.T) {
		cases := map[string]string{
			"بنات": "Girls",
			"بنين": "Boys",
		}
		for token, want := range cases {
			update := uc.ExtractFilters(&domain.SearchCriteria{
				SchoolRequirements: &domain.SchoolRequirements{Required: true, Gender: token},
			})
			assert.Equal(t, want, update["school_gender"], token)
		}
	})

	t.Run("unknown gender dropped", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			SchoolRequirements: &domain.SchoolRequirements{Required: true, Gender: "مختلط"},
		})
		_, present := update["school_gender"]
		assert.False(t, present)
	})

	t.Run("level buckets", func(t *testing.T) {
		cases := map[string]string{
			"ابتدائي":       "elementary",
			"المرحلة المتوسطة": "middle",
			"ثانوي":         "high",
			"روضة أطفال":    "kindergarten",
			"حضانة":         "nursery",
		}
		for raw, want := range cases {
			update := uc.ExtractFilters(&domain.SearchCriteria{
				SchoolRequirements: &domain.SchoolRequirements{Required: true, Levels: []string{raw}},
			})
			assert.Equal(t, want, update["school_level"], raw)
		}
	})

	t.Run("unbucketed level echoed raw", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			SchoolRequirements: &domain.SchoolRequirements{Required: true, Levels: []string{"تحفيظ قرآن"}},
		})
		assert.Equal(t, "تحفيظ قرآن", update["school_level"])
	})

	t.Run("university requirements copied verbatim", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			UniversityRequirements: &domain.UniversityRequirements{
				Required:           true,
				UniversityName:     "جامعة الملك سعود",
				MaxDistanceMinutes: 20,
			},
		})
		assert.Equal(t, "جامعة الملك سعود", update["selected_university"])
		assert.Equal(t, 20, update["max_university_time"])
	})

	t.Run("inactive blocks contribute nothing", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			SchoolRequirements:     &domain.SchoolRequirements{Required: false, Gender: "بنات"},
			UniversityRequirements: &domain.UniversityRequirements{Required: false, UniversityName: "x"},
		})
		assert.Empty(t, update)
	})

	t.Run("update merges through Apply", func(t *testing.T) {
		update := uc.ExtractFilters(&domain.SearchCriteria{
			SchoolRequirements: &domain.SchoolRequirements{
				Required:           true,
				Gender:             "بنين",
				Levels:             []string{"ثانوي"},
				MaxDistanceMinutes: 12,
			},
		})

		state, err := domain.DefaultFilterState().Apply(update)
		require.NoError(t, err)
		assert.Equal(t, "Boys", state.SchoolGender)
		assert.Equal(t, "high", state.SchoolLevel)
		assert.Equal(t, 12, state.MaxSchoolTime)
	})
}
