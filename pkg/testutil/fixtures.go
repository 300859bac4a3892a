package testutil

// Inline test data used across package tests. Paths are absolute so they
// work on the in-memory filesystem.
const (
	ProjectRoot = "/project"

	LoginSuite = `
[settings]
documentation = "Login tests"
resources = ["resources/common.toml"]

[[tests]]
name = "Valid Login"

[[tests.steps]]
keyword = "Login As"
args = ["demo"]

[[keywords]]
name = "Open Login Page"
`

	CheckoutSuite = `
settings:
  resources:
    - "${CURDIR}/resources/checkout.yaml"
tests:
  - name: Buy One
    steps:
      - keyword: Add To Cart
keywords:
  - name: Add To Cart
    args: ["${item}"]
`

	CommonResource = `
[settings]
resources = ["base.hcl"]

[[keywords]]
name = "Login As"
args = ["${user}"]
doc = "Logs in as **user**."

[[keywords]]
name = "Logout"
`

	CheckoutResource = `
settings:
  resources: [common.toml]
keywords:
  - name: Pay
`

	BaseResource = `
settings {
  resources = ["common.toml"]
}

keyword {
  name = "Open Browser"
  args = ["$${url}"]
}
`

	InitFile = `
[settings]
documentation = "All acceptance tests"

[[keywords]]
name = "Suite Setup"
`
)

// ProjectTree returns a directory suite with an init file, two file suites
// and three resources. common.toml and base.hcl import each other.
func ProjectTree() map[string]string {
	return map[string]string{
		"/project/__init__.toml":           InitFile,
		"/project/login.toml":              LoginSuite,
		"/project/checkout.yaml":           CheckoutSuite,
		"/project/resources/common.toml":   CommonResource,
		"/project/resources/checkout.yaml": CheckoutResource,
		"/project/resources/base.hcl":      BaseResource,
		"/project/notes.md":                "not test data",
	}
}
