// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package sketches

// risoPalette holds Risograph ink colours.
var risoPalette = []string{
	"#000000", // black
	"#914e72", // burgundy
	"#0078bf", // blue
	"#00a95c", // green
	"#3255a4", // medium blue
	"#f15060", // bright red
	"#3d5588", // federal blue
	"#765ba7", // purple
	"#00838a", // teal
	"#bb8b41", // flat gold
	"#407060", // hunter green
	"#ff665e", // red
	"#925f52", // brown
	"#ffe800", // yellow
	"#d2515e", // marine red
	"#ff6c2f", // orange
	"#ff48b0", // fluorescent pink
	"#88898a", // light gray
	"#ac936e", // metallic gold
	"#62a8e5", // cornflower
	"#4982cf", // sky blue
	"#0074a2", // sea blue
	"#235ba8", // lake
	"#484d7a", // indigo
	"#435060", // midnight
	"#d5e4c0", // mist
	"#70747c", // charcoal
	"#5f8289", // smoky teal
	"#9d7ad2", // violet
	"#5ec8e5", // aqua
	"#82d8d5", // mint
	"#237e74", // pine
	"#67b346", // kelly green
	"#62c2b1", // seafoam
	"#f984ca", // bubble gum
	"#f6a04d", // apricot
	"#ffb511", // sunflower
	"#ff8e91", // coral
	"#ff6f4c", // pumpkin
	"#e45d50", // crimson
}
