package format

// Document is the parsed content of one test data file
type Document struct {
	Settings  *Settings  `toml:"settings,omitempty" yaml:"settings,omitempty" hcl:"settings,block"`
	Variables []Variable `toml:"variables,omitempty" yaml:"variables,omitempty" hcl:"variable,block"`
	Tests     []TestCase `toml:"tests,omitempty" yaml:"tests,omitempty" hcl:"test,block"`
	Keywords  []Keyword  `toml:"keywords,omitempty" yaml:"keywords,omitempty" hcl:"keyword,block"`
}

// Settings holds file level settings
type Settings struct {
	Documentation string   `toml:"documentation,omitempty" yaml:"documentation,omitempty" hcl:"documentation,optional"`
	Resources     []string `toml:"resources,omitempty" yaml:"resources,omitempty" hcl:"resources,optional"`
	Libraries     []string `toml:"libraries,omitempty" yaml:"libraries,omitempty" hcl:"libraries,optional"`
}

// Variable is a scalar variable definition
type Variable struct {
	Name  string `toml:"name" yaml:"name" hcl:"name"`
	Value string `toml:"value" yaml:"value" hcl:"value"`
}

// TestCase is a single test
type TestCase struct {
	Name  string   `toml:"name" yaml:"name" hcl:"name"`
	Doc   string   `toml:"doc,omitempty" yaml:"doc,omitempty" hcl:"doc,optional"`
	Tags  []string `toml:"tags,omitempty" yaml:"tags,omitempty" hcl:"tags,optional"`
	Steps []Step   `toml:"steps,omitempty" yaml:"steps,omitempty" hcl:"step,block"`
}

// Keyword is a user keyword definition
type Keyword struct {
	Name  string   `toml:"name" yaml:"name" hcl:"name"`
	Doc   string   `toml:"doc,omitempty" yaml:"doc,omitempty" hcl:"doc,optional"`
	Args  []string `toml:"args,omitempty" yaml:"args,omitempty" hcl:"args,optional"`
	Steps []Step   `toml:"steps,omitempty" yaml:"steps,omitempty" hcl:"step,block"`
}

// Step is one keyword call inside a test or keyword body
type Step struct {
	Keyword string   `toml:"keyword" yaml:"keyword" hcl:"keyword"`
	Args    []string `toml:"args,omitempty" yaml:"args,omitempty" hcl:"args,optional"`
	Assign  []string `toml:"assign,omitempty" yaml:"assign,omitempty" hcl:"assign,optional"`
}

// ResourceImports returns the resource paths declared in the settings
func (d *Document) ResourceImports() []string {
	if d.Settings == nil {
		return nil
	}
	return d.Settings.Resources
}

// Documentation returns the file documentation, if any
func (d *Document) Documentation() string {
	if d.Settings == nil {
		return ""
	}
	return d.Settings.Documentation
}

// HasTests reports whether the document defines any test case
func (d *Document) HasTests() bool {
	return len(d.Tests) > 0
}

// EnsureSettings returns the settings, creating them when missing
func (d *Document) EnsureSettings() *Settings {
	if d.Settings == nil {
		d.Settings = &Settings{}
	}
	return d.Settings
}
