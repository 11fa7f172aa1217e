package config

import "time"

// Application settings.
const (
	AppName     = "coursecards"
	LogFileName = "coursecards.log"

	// SavedStateDSN keeps the saved-state bundle in memory for the life of the process.
	SavedStateDSN = ":memory:"
)

// Labels.
const (
	HeaderTitle        = "Academic Courses"
	CodeLabel          = "Code: "
	CreditsLabel       = "Credits: "
	DescriptionLabel   = "Description: "
	PrerequisitesLabel = "Prerequisites: "
	LogoDescription    = "App Logo"
	QuitHelp           = "click a card to expand | wheel to scroll | [q] quit"
)

// Reveal animation tuning.
const (
	AnimationFPS       = 60
	AnimationFrequency = 7.0
	AnimationDamping   = 1.0
	AnimationEpsilon   = 0.01
	AnimationMaxFrames = 240
)

// FrameInterval is the delay between two animation frames.
const FrameInterval = time.Second / AnimationFPS
