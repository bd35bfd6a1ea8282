package smooth

import "fmt"

// ConfigurationError reports a parameter value outside its allowed range.
// It is returned before any fitting work starts.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// FitError reports a numerical fitting failure on otherwise valid
// parameters, such as an underdetermined system or duplicate x values
// reaching a method that needs strictly increasing x.
type FitError struct {
	Method string
	Reason string
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s fit failed: %s", e.Method, e.Reason)
}
