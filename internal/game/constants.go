package game

const (
	// MinDisplayNameLen is the minimum trimmed length of a player name
	MinDisplayNameLen = 2

	// MinNoteLen is the minimum length of a single tasting note
	MinNoteLen = 10

	// ExtremeGuessPoints is awarded per correct price-extreme gambit guess
	ExtremeGuessPoints = 2

	// PINLength is the length of generated room PINs
	PINLength = 4

	// PINDigits are the characters used for generating room PINs
	PINDigits = "0123456789"

	// SSEBufferSize is the buffer size for SSE message channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for sending messages to SSE clients
	SSETimeoutSeconds = 1
)
