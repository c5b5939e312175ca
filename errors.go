package morfa

import (
	"errors"
	"fmt"
)

var ErrLanguageNotSupported = errors.New("language not supported")
var ErrTaggerUnavailable = errors.New("tagger unavailable")
var ErrTaggerInput = errors.New("tagger could not process input")

// ConfigError reports a malformed construct catalog. It is produced once
// when a catalog is validated at startup, never at analysis time.
type ConfigError struct {
	Language  string `json:"language"`
	Construct string `json:"construct,omitempty"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
}

func (e ConfigError) Error() string {
	if e.Construct == "" {
		return fmt.Sprintf("catalog %s: %s", e.Language, e.Message)
	}
	if e.Field == "" {
		return fmt.Sprintf("catalog %s, construct %s: %s", e.Language, e.Construct, e.Message)
	}

	return fmt.Sprintf("catalog %s, construct %s, %s: %s", e.Language, e.Construct, e.Field, e.Message)
}
