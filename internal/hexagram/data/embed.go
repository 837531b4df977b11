// Package data embeds the packaged hexagram dataset.
package data

import _ "embed"

// Path is the dataset path inside the packaged assets.
const Path = "data/iching.json"

// IChingJSON is the packaged dataset of 64 hexagram entries.
//
//go:embed iching.json
var IChingJSON []byte
