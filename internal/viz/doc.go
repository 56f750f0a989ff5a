// Package viz turns sampled conics into drawable scenes.
//
//   - [Mapper]: plane to screen coordinates, y-axis inverted
//   - [Scene]: backend-neutral display list built by [Render]
//   - [Canvas]: Braille-based pixel canvas for terminal rendering
//   - [Theme] and [Styles]: lipgloss palettes for the shell
//
// The lab geometry ([LabWidth], [LabHeight], [LabScale]) matches the 400×400
// board used by the SVG and PNG backends.
package viz
