package testhelpers

import "encoding/json"

// ServiceBinding is one entry of VCAP_SERVICES.
type ServiceBinding struct {
	Label       string                 `json:"-"`
	Name        string                 `json:"name"`
	Tags        []string               `json:"tags"`
	Credentials map[string]interface{} `json:"credentials"`
}

// DatabaseBinding is a database service tagged with every name in tags and
// with its engine.
func DatabaseBinding(engine string, credentials map[string]string, tags ...string) ServiceBinding {
	creds := make(map[string]interface{}, len(credentials))
	for key, value := range credentials {
		creds[key] = value
	}
	return ServiceBinding{
		Label:       "perfmon",
		Name:        "perfmon-db",
		Tags:        append(tags, engine),
		Credentials: creds,
	}
}

// ConfigBinding is a user-provided service carrying config under a
// credential of its own name.
func ConfigBinding(name string, config string) ServiceBinding {
	return ServiceBinding{
		Label:       "user-provided",
		Name:        name,
		Tags:        []string{name},
		Credentials: map[string]interface{}{name: json.RawMessage(config)},
	}
}

func VcapServices(bindings ...ServiceBinding) (string, error) {
	byLabel := map[string][]ServiceBinding{}
	for _, binding := range bindings {
		byLabel[binding.Label] = append(byLabel[binding.Label], binding)
	}
	encoded, err := json.Marshal(byLabel)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
