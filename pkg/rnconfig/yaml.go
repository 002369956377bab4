package rnconfig

import "gopkg.in/yaml.v3"

// unmarshalYAML is split into its own tiny file so the yaml.v3 import
// sits next to the one type that needs it, mirroring the teacher's
// config.go which keeps its single yaml.Unmarshal call inline -- here
// split out only because this package also imports a TOML decoder for
// config.toml and keeping the two formats' parsing calls visually
// separate is clearer.
func unmarshalYAML(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
