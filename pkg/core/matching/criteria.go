package matching

import (
	"github.com/jakechorley/crewsync/pkg/core/model"
)

// Candidate is a volunteer being considered for a shift
type Candidate struct {
	Volunteer model.User

	// AssignedHours is the volunteer's total hours across shifts they already hold
	AssignedHours float64
}

// Criterion scores how well a candidate suits a shift
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// Score returns a value between 0.0 and 1.0. Higher is a better match.
	// Criteria never veto a candidate; skills are advisory only.
	Score(shift model.Shift, candidate Candidate) float64

	// Weight multiplies Score when candidates are ranked (typical range: 0.0 - 10.0)
	Weight() float64
}

// SkillOverlapCriterion prefers volunteers who list more of the shift's skill tags.
//
// Score:
//   - The fraction of the shift's skills the volunteer lists, matched exactly
//   - Returns 0 when the shift lists no skills, so it has no effect on ranking
type SkillOverlapCriterion struct {
	weight float64
}

func NewSkillOverlapCriterion(weight float64) *SkillOverlapCriterion {
	return &SkillOverlapCriterion{weight: weight}
}

func (c *SkillOverlapCriterion) Name() string {
	return "SkillOverlap"
}

func (c *SkillOverlapCriterion) Weight() float64 {
	return c.weight
}

func (c *SkillOverlapCriterion) Score(shift model.Shift, candidate Candidate) float64 {
	if len(shift.Skills) == 0 {
		return 0
	}
	return float64(len(MatchedSkills(shift, candidate.Volunteer))) / float64(len(shift.Skills))
}

// AvailabilityCriterion prefers volunteers whose declared time slots cover the shift start.
//
// Score:
//   - 1 when the start time's slot is in the volunteer's availability
//   - 0.5 when the volunteer declared no availability at all
//   - 0 otherwise
type AvailabilityCriterion struct {
	weight float64
}

func NewAvailabilityCriterion(weight float64) *AvailabilityCriterion {
	return &AvailabilityCriterion{weight: weight}
}

func (c *AvailabilityCriterion) Name() string {
	return "Availability"
}

func (c *AvailabilityCriterion) Weight() float64 {
	return c.weight
}

func (c *AvailabilityCriterion) Score(shift model.Shift, candidate Candidate) float64 {
	if len(candidate.Volunteer.Availability) == 0 {
		return 0.5
	}
	if candidate.Volunteer.IsAvailable(model.TimeSlotOf(shift.StartTime)) {
		return 1
	}
	return 0
}

// workloadReferenceHours is the load at which WorkloadCriterion scores one half
const workloadReferenceHours = 8.0

// WorkloadCriterion spreads work by preferring volunteers with fewer assigned hours.
// The score is 1/(1+hours/8): an idle volunteer scores 1, one with 8 hours scores 0.5.
type WorkloadCriterion struct {
	weight float64
}

func NewWorkloadCriterion(weight float64) *WorkloadCriterion {
	return &WorkloadCriterion{weight: weight}
}

func (c *WorkloadCriterion) Name() string {
	return "Workload"
}

func (c *WorkloadCriterion) Weight() float64 {
	return c.weight
}

func (c *WorkloadCriterion) Score(shift model.Shift, candidate Candidate) float64 {
	hours := max(candidate.AssignedHours, 0)
	return 1 / (1 + hours/workloadReferenceHours)
}

// MatchedSkills lists the shift's skills the volunteer has, in the shift's order
func MatchedSkills(shift model.Shift, volunteer model.User) []string {
	var matched []string
	for _, skill := range shift.Skills {
		if volunteer.HasSkill(skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
