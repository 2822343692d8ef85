package config

// Remapfile represents the structure of a remap table file.
//
// A library maps to the include directories that replace its /usr/local path.
// An empty entry (null in YAML, "" in either format) stands for the original path
// under the sysroot. Entries are pointers so a YAML null survives decoding.
type Remapfile struct {
	Version   string               `yaml:"version"   toml:"version"`
	Keep      []string             `yaml:"keep"      toml:"keep"      validate:"omitempty,dive,required,startswith=/"`
	Libraries map[string][]*string `yaml:"libraries" toml:"libraries" validate:"required,min=1,dive,keys,required,excludesall=/-,endkeys,min=1,dive,omitempty,startswith=/"`
}
