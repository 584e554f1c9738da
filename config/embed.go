// Package config ships the default rate table inside the binary.
package config

import _ "embed"

// PremiumBrackets is the contents of premium_brackets.yaml.
//
//go:embed premium_brackets.yaml
var PremiumBrackets []byte
