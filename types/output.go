package types

// OutputKind distinguishes narration, prompts for clarification, and
// errors, so hosts can style them differently.
type OutputKind int

const (
	Narration OutputKind = iota
	Prompt
	Error
)

// Output is the fully-resolved result of one turn: display text, a
// presentation kind, and a short machine-readable code for tests and
// telemetry (e.g. "NO_EXIT", "DARK", "BATTERY_DEAD").
type Output struct {
	Text string
	Kind OutputKind
	Code string
}

// Append returns a copy of the output with extra text added after a
// blank line. Kind and code are preserved; turn systems use this to
// annotate the routed result without replacing it.
func (o Output) Append(extra string) Output {
	if extra == "" {
		return o
	}
	if o.Text == "" {
		o.Text = extra
		return o
	}
	o.Text += "\n\n" + extra
	return o
}
