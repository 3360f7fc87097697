package settings

import "fmt"

// Validate checks that settings values are valid.
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	return validateViewMode(s.ViewMode)
}

func validateViewMode(mode string) error {
	switch mode {
	case "", ViewModeCards, ViewModeCompact:
		return nil
	}
	return fmt.Errorf("invalid view_mode value: %s", mode)
}
