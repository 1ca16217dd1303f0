package config

import _ "embed"

// DefaultAccessRules - встроенные правила доступа (access_rules.yaml).
//
//go:embed access_rules.yaml
var DefaultAccessRules []byte
