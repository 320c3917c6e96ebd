// Package rawconfig obtains the raw, untyped settings mapping that the
// validator consumes.
//
// The package uses an interface-based design with two extension points:
//   - Fetcher: retrieves raw config bytes (file, env, stdin, etc.)
//   - Parser: decodes raw bytes into an untyped mapping, with section
//     navigation support
//
// # Section Navigation
//
// Load accepts a section parameter that targets a sub-mapping within the
// configuration document. Sections use colon (:) as the separator:
//
//	"drill"            -> config["drill"]
//	"tools:typedrill"  -> config["tools"]["typedrill"]
//	""                 -> entire document
//
// Parser implementations handle section navigation internally. The YAML
// parser in rawconfig/parser/yaml uses goccy/go-yaml PathString to navigate
// to the target section before decoding.
//
// # Example
//
//	fetcher, err := file.NewFetcher("drill.yaml")()
//	if err != nil {
//	    // config file missing or unreadable
//	}
//	raw, err := rawconfig.Load(yaml.NewParser(), fetcher, "drill")
package rawconfig
