package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
)

// genderTokens maps the assistant's Arabic gender words to the facet
// values the store uses. Unknown words are dropped.
var genderTokens = map[string]string{
	"بنات": "Girls",
	"بنين": "Boys",
}

// levelBuckets is checked in priority order; the first token contained
// in the raw level wins.
var levelBuckets = []struct {
	token string
	value string
}{
	{"ابتدائي", "elementary"},
	{"متوسط", "middle"},
	{"ثانوي", "high"},
	{"روضة", "kindergarten"},
	{"حضانة", "nursery"},
}

// CriteriaUseCase translates the assistant's structured criteria into a
// facet change-set mergeable via FilterState.Apply.
type CriteriaUseCase struct {
	logger *zap.Logger
}

func NewCriteriaUseCase(logger *zap.Logger) *CriteriaUseCase {
	return &CriteriaUseCase{logger: logger}
}

// ExtractFilters builds the change-set. Nil criteria or inactive
// requirement blocks contribute nothing.
func (uc *CriteriaUseCase) ExtractFilters(criteria *domain.SearchCriteria) domain.FilterUpdate {
	update := domain.FilterUpdate{}
	if criteria == nil {
		return update
	}

	if school := criteria.SchoolRequirements; school != nil && school.Required {
		if gender, ok := genderTokens[strings.TrimSpace(school.Gender)]; ok {
			update["school_gender"] = gender
		}
		if len(school.Levels) > 0 {
			update["school_level"] = bucketLevel(school.Levels[0])
		}
		if school.MaxDistanceMinutes > 0 {
			update["max_school_time"] = school.MaxDistanceMinutes
		}
	}

	if university := criteria.UniversityRequirements; university != nil && university.Required {
		if university.UniversityName != "" {
			update["selected_university"] = university.UniversityName
		}
		if university.MaxDistanceMinutes > 0 {
			update["max_university_time"] = university.MaxDistanceMinutes
		}
	}

	if len(update) > 0 {
		uc.logger.Debug("Criteria extracted", zap.Int("facets", len(update)))
	}

	return update
}

// bucketLevel classifies a raw Arabic level description; text matching
// no bucket is echoed back unchanged.
func bucketLevel(raw string) string {
	for _, bucket := range levelBuckets {
		if strings.Contains(raw, bucket.token) {
			return bucket.value
		}
	}
	return raw
}
