package assets

import _ "embed"

// PresetsData holds the raw JSON catalog of provider presets.
//
//go:embed presets.json
var PresetsData []byte
