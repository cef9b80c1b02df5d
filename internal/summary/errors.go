package summary

import (
	"errors"
	"fmt"
)

// CalculationError wraps any failure raised while orchestrating one
// calculation pass. Pass is the lower-cased method name, "color", or
// "thermal_ir". The cause is preserved for errors.Is/As.
type CalculationError struct {
	Pass string
	Err  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("spectral averages summary calculation failed in %s pass: %v", e.Pass, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// PassNameFromError extracts the failing pass name from an orchestration
// error, or "summary" when the error did not come from a specific pass.
func PassNameFromError(err error) string {
	var ce *CalculationError
	if errors.As(err, &ce) {
		return ce.Pass
	}
	return "summary"
}
