// Package chart holds the declarative chart description the library
// emits. The structures mirror the plotly figure schema (trace + layout
// JSON) so the artifact can be handed to any plotly-family renderer
// without translation. They carry no behavior.
package chart

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
