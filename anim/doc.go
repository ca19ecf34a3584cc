// Package anim packages rendered frames into one animated GIF.
//
// Frames are painted on RGBA canvases and converted to paletted images
// with Quantize. A canvas with at most 256 distinct colours (a solid
// background plus antialiased text in one colour) keeps its exact
// colours; anything richer, such as a photographic background, is
// dithered onto the Plan 9 palette.
//
//	frames := []*image.Paletted{anim.Quantize(a), anim.Quantize(b)}
//	err := anim.Encode(w, frames, []int{100, 100}, anim.PlayOnce)
package anim
