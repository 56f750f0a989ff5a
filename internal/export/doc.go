// Package export writes rendered scenes and sampled curves to files.
//
//   - [SceneToSVG]: vector image of a scene on the lab canvas
//   - [WritePNG]: raster image through fogleman/gg
//   - [CanvasToSVG]: the terminal braille raster, dot for dot
//   - [WriteCSV], [WriteJSON]: sampled points and foci
package export
