package analysis

import (
	"fmt"
	"time"
)

// ConfigError reports invalid caller-supplied configuration: a malformed
// date-filter string or an unknown timezone name. It is returned before any
// aggregation work begins; there are no partial results.
type ConfigError struct {
	msg string
	err error
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

func configErrorf(err error, format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...), err: err}
}

// LoadZone resolves a timezone name ("UTC", "Europe/Madrid", "Local") to a
// location. Analysis entry points take the location explicitly; the "Local"
// default belongs to the CLI layer, since it makes results depend on the
// machine running the query.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, configErrorf(err, "invalid timezone %q", name)
	}
	return loc, nil
}
