// Package converters reads and writes linear programs as plain documents.
//
// A Document is field-agnostic: every coefficient is kept as a string so that
// exact fractions such as "3/2" survive a round trip. Three encodings are
// supported and selected by file extension:
//
//	.json         encoding/json
//	.yaml / .yml  gopkg.in/yaml.v3
//	.toml         github.com/BurntSushi/toml
//
// Decoders also accept bare numbers for coefficients. ToProblem parses a
// Document into an lp.ProblemData over any field.Field; FromProblem goes back.
//
//	goal: maximize
//	form: inequality
//	field: rational
//	objective: [3, 5]
//	constraints:
//	  - [1, 0]
//	  - [0, 2]
//	  - [3, 2]
//	rhs: [4, 12, 18]
package converters
