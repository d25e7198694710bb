package app

// DefaultMessage is the line printed once every routine has run.
const DefaultMessage = "Done"

// Config holds the Program's settings.
//
// It is never loaded from flags, environment or files: the command has no
// configuration surface, so DefaultConfig is the only source in production.
type Config struct {
	// Message is written, followed by a newline, after the routines run.
	Message string
}

// DefaultConfig returns the configuration the command runs with.
func DefaultConfig() Config {
	return Config{Message: DefaultMessage}
}

// Validate reports whether the configuration can drive a Program.
func (c Config) Validate() error {
	if c.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}
