package constants

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Field limits
const (
	MaxTitleLength              = 64
	MaxLabelTitleLength         = 32
	MaxProjectDescriptionLength = 256
	MaxTaskDescriptionLength    = 512
)

// Story point constraints
const (
	MinStoryPoints  = 0
	MaxStoryPoints  = 100
	StoryPointsStep = 5
)
