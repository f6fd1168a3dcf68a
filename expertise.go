package gloss

// ExpertiseLevel identifies the target audience for generated definitions.
type ExpertiseLevel string

// Supported expertise levels.
const (
	ExpertiseJunior ExpertiseLevel = "junior"
	ExpertiseMid    ExpertiseLevel = "mid"
	ExpertiseSenior ExpertiseLevel = "senior"
)

var expertiseDescriptions = map[ExpertiseLevel]string{
	ExpertiseJunior: "junior developer with 2-3 years of experience",
	ExpertiseMid:    "mid-level developer with 4-6 years of experience",
	ExpertiseSenior: "senior developer with 7+ years of experience",
}

// Description returns the audience description used in prompts and in
// rendered output. Unknown levels fall back to junior.
func (l ExpertiseLevel) Description() string {
	if desc, ok := expertiseDescriptions[l]; ok {
		return desc
	}
	return expertiseDescriptions[ExpertiseJunior]
}

// Valid reports whether the level is one of the supported values.
func (l ExpertiseLevel) Valid() bool {
	_, ok := expertiseDescriptions[l]
	return ok
}
