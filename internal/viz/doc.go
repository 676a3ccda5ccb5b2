// Package viz renders derived equations and errors for the terminal.
//
// Output is styled with lipgloss using one of the built-in themes:
//
//   - [Theme]: a named color scheme (cyberpunk, retro, minimal, ocean, sunset)
//   - [Styles]: the lipgloss styles derived from a theme
//   - [RenderEquations]: a titled, element-grouped equation listing
//
// Rendering is deterministic apart from color; pass the minimal theme and a
// no-color renderer to get plain text.
package viz
