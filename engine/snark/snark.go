// Package snark selects randomized flavor lines. Every selector takes
// an explicit randomness source so tests can seed it and assert exact
// output.
package snark

import (
	"fmt"
	"math/rand"
)

var droppedTemplates = []string{
	"Dropped: %s. Gravity is thrilled.",
	"Dropped: %s. The floor accepts your offering.",
	"Dropped: %s. A bold commitment to having less.",
	"Dropped: %s. Good. Now try not dropping yourself.",
	"Dropped: %s. Object permanence: still a thing.",
}

// Dropped returns a drop confirmation for an item name.
func Dropped(itemName string, rng *rand.Rand) string {
	return fmt.Sprintf(droppedTemplates[rng.Intn(len(droppedTemplates))], itemName)
}

var ambientLines = []string{
	"You listen. HVAC whispers corporate secrets into the ceiling tiles.",
	"Fluorescent lights hum with the confidence of a company that can't be sued properly.",
	"Distant ventilation. Somewhere, a printer suffers.",
	"Silence. The kind that suggests someone is paid to keep it that way.",
}

// Ambient returns a generic listen response for rooms with no authored
// ambience.
func Ambient(rng *rand.Rand) string {
	return ambientLines[rng.Intn(len(ambientLines))]
}

var approachingLines = []string{
	"Footsteps. Controlled. Close enough that you stop pretending you're safe.",
	"A faint scuff of shoes. Someone is walking like they belong here.",
	"Keys clink once. Not nearby. Not far.",
}

// Approaching returns a line warning that the guard is one step away.
func Approaching(rng *rand.Rand) string {
	return approachingLines[rng.Intn(len(approachingLines))]
}
