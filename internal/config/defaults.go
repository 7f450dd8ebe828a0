package config

import (
	_ "embed"
)

//go:embed defaults/app.yaml
var defaultAppYAML []byte
