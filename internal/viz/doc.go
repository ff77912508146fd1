// Package viz renders recorded frames for the terminal.
//
// [Renderer.Frame] prints one frame: board leds, the timeline position, every
// variable formatted by [frames.FormatValue] and every attached component.
// [Plot] charts a numeric variable across a run with asciigraph.
package viz
