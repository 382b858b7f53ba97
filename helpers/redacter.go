package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"code.cloudfoundry.org/lager/v3"
)

const redactedValue = "*REDACTED*"

// DefaultRedactedKeys matches log data keys whose values are never written.
var DefaultRedactedKeys = []string{
	"[Pp]wd",
	"[Pp]ass",
	"[Ss]ecret",
	"[Tt]oken",
	"[Aa]pi_?[Kk]ey",
	"[Rr]outing_?[Kk]ey",
	"[Ww]ebhook",
	"[Aa]uthorization",
	"[Cc]ookie",
}

var (
	dbURLCredPattern = regexp.MustCompile(`\b(postgres|postgresql|mysql)://([^:/@\s]+):([^@\s]+)@`)
	bearerPattern    = regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9\-._~+/]+=*`)
)

// Redacter scrubs serialised log lines. Values under sensitive keys are
// replaced wholesale; database URL passwords and bearer tokens are cut out of
// any string they appear in.
type Redacter struct {
	keys *lager.JSONRedacter
}

func NewRedacter(keyPatterns []string, valuePatterns []string) (*Redacter, error) {
	jsonRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &Redacter{keys: jsonRedacter}, nil
}

func (r *Redacter) Redact(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	var blob interface{}
	if err := json.Unmarshal(data, &blob); err != nil {
		return serialisationError(err)
	}
	scrubbed, err := json.Marshal(scrub(blob))
	if err != nil {
		return serialisationError(err)
	}
	return r.keys.Redact(scrubbed)
}

// RedactData applies Redact to a lager data map.
func (r *Redacter) RedactData(data lager.Data) lager.Data {
	if len(data) == 0 {
		return data
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return lager.Data{"lager serialisation error": err.Error()}
	}
	redacted := lager.Data{}
	if err := json.Unmarshal(r.Redact(encoded), &redacted); err != nil {
		return lager.Data{"lager serialisation error": err.Error()}
	}
	return redacted
}

func scrub(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, item := range v {
			v[key] = scrub(item)
		}
	case []interface{}:
		for i, item := range v {
			v[i] = scrub(item)
		}
	case string:
		v = dbURLCredPattern.ReplaceAllString(v, "$1://$2:"+redactedValue+"@")
		return bearerPattern.ReplaceAllString(v, "Bearer "+redactedValue)
	}
	return value
}

func serialisationError(err error) []byte {
	var unsupported *json.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		content, marshalErr := json.Marshal(map[string]interface{}{"lager serialisation error": unsupported.Error()})
		if marshalErr == nil {
			return content
		}
		err = marshalErr
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
	return []byte("{}")
}
