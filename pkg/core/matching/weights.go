package matching

// Weights used by DefaultCriteria
const (
	// WeightSkillOverlap makes matching skill tags the strongest signal
	WeightSkillOverlap = 3.0

	// WeightAvailability rewards volunteers whose declared time slots cover the shift start
	WeightAvailability = 2.0

	// WeightWorkload nudges suggestions toward volunteers with fewer assigned hours
	WeightWorkload = 1.0
)
