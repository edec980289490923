package matching

import (
	"slices"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// SuggestionStore defines the store operations needed to rank volunteers
type SuggestionStore interface {
	ListUsersByRole(role model.Role) []model.User
	TotalVolunteerHours(volunteerID string) float64
}

// Suggestion is a ranked candidate with its per-criterion scores
type Suggestion struct {
	Volunteer     model.User
	Score         float64
	Breakdown     map[string]float64
	MatchedSkills []string
}

// DefaultCriteria returns the criteria used by SuggestVolunteers
func DefaultCriteria() []Criterion {
	return []Criterion{
		NewSkillOverlapCriterion(WeightSkillOverlap),
		NewAvailabilityCriterion(WeightAvailability),
		NewWorkloadCriterion(WeightWorkload),
	}
}

// SuggestVolunteers ranks every volunteer not already on the shift with DefaultCriteria.
// A limit of zero or less returns every candidate.
func SuggestVolunteers(store SuggestionStore, shift model.Shift, limit int) []Suggestion {
	var candidates []Candidate
	for _, v := range store.ListUsersByRole(model.RoleVolunteer) {
		if shift.HasVolunteer(v.ID) {
			continue
		}
		candidates = append(candidates, Candidate{
			Volunteer:     v,
			AssignedHours: store.TotalVolunteerHours(v.ID),
		})
	}

	suggestions := Rank(shift, candidates, DefaultCriteria())
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Rank scores candidates as the weighted sum of every criterion and sorts them best first.
// Equal scores keep the candidates' input order.
func Rank(shift model.Shift, candidates []Candidate, criteria []Criterion) []Suggestion {
	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		s := Suggestion{
			Volunteer:     c.Volunteer,
			Breakdown:     make(map[string]float64, len(criteria)),
			MatchedSkills: MatchedSkills(shift, c.Volunteer),
		}
		for _, criterion := range criteria {
			score := criterion.Score(shift, c)
			s.Breakdown[criterion.Name()] = score
			s.Score += score * criterion.Weight()
		}
		suggestions = append(suggestions, s)
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return suggestions
}
