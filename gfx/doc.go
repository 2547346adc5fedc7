// Package gfx is a small 2D software rasterizer for RGB565 framebuffers.
//
// Drawing happens in pixel space with the origin at the top-left corner and
// y growing downwards. Shapes are positioned with an Affine transform built
// by chaining Trans and Rot, so
//
//	Identity().Trans(cx, cy).Rot(a).Trans(-25, -25)
//
// maps a 50x50 square at the origin to one spinning about (cx, cy).
package gfx
