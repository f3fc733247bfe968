package catalog

import _ "embed"

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns the bundled demo catalog.
func Sample() (File, error) {
	return ParseYAML(sampleYAML)
}
