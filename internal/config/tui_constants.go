package config

// Layout constants.
const (
	// LogoHeight is the number of banner lines kept above the list.
	LogoHeight = 6

	// HeaderGap is the number of blank lines under the header row.
	HeaderGap = 1

	// CardGap is the number of blank lines between two cards.
	CardGap = 1

	// ListPaddingX is the horizontal padding around the list.
	ListPaddingX = 2

	// CardPaddingX is the horizontal padding inside a card.
	CardPaddingX = 2

	// MinCardWidth is the narrowest a card is ever rendered.
	MinCardWidth = 24

	// DefaultWidth is used before the first window size is known.
	DefaultWidth = 80

	// DefaultHeight is used before the first window size is known.
	DefaultHeight = 24

	// FooterHeight is the number of lines reserved for the help footer.
	FooterHeight = 1
)

// NonInteractiveWidth is the render width used when stdout is not a terminal.
const NonInteractiveWidth = 80
