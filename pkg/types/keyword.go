package types

// Keyword is a named, reusable test action defined in a suite or resource
type Keyword struct {
	Name string `json:"name"`

	// Source is the name of the file defining the keyword
	Source string `json:"source"`

	// Path is the file path defining the keyword
	Path string   `json:"path"`
	Args []string `json:"args,omitempty"`
	Doc  string   `json:"doc,omitempty"`
}

// LongName returns the fully-qualified keyword name, e.g. "common.Login As"
func (k *Keyword) LongName() string {
	if k.Source == "" {
		return k.Name
	}
	return k.Source + "." + k.Name
}
