// Package glyphatlas packs rasterized font glyphs and icons into a single
// single-channel bitmap and records where every glyph and icon ended up.
//
// # Overview
//
// An [Atlas] owns a square [Canvas] whose free space is tracked by a
// guillotine [Packer]. Icons are added from decoded bitmaps (see package
// codec), fonts from a rasterizer face (see package glyph). Every font stores
// one [CharEntry] per printable ASCII code point, 32 through 126.
//
//	atlas, err := glyphatlas.New(glyphatlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := atlas.AddIconFile("icons/folder.png"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := atlas.AddFontFile("fonts/mono.ttf", 16); err != nil {
//	    log.Fatal(err)
//	}
//
// The finished atlas is written by package export as a Go source file with a
// companion raw pixel dump, a JSON manifest and a PNG preview.
//
// # Packing
//
// Allocation is deterministic: the same canvas size, padding and request
// sequence always produce the same rectangles. Padding separates every tile
// from its neighbours and from the canvas border.
//
// # Errors
//
// Errors can be classified with [KindOf]. A tile that does not fit fails with
// [*OverflowError]; retrying without a larger canvas cannot succeed.
//
// # Concurrency
//
// Atlas, Canvas and Packer are not safe for concurrent use. Assets are added
// one at a time by a single goroutine.
package glyphatlas
