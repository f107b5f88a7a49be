// Package pml models PresentationML: the presentation part of a
// presentation package and its slide graph — slides, slide layouts, slide
// masters and notes slides, all reached through per-part relationships.
//
// Slide ordering follows the presentation part's slide id list, with each
// entry's relationship identifier dereferenced against the presentation
// part, never by slide file naming. Slides are dispatched and bound
// lazily: inspecting slide 1 of a large deck parses one slide part, not
// the whole package.
package pml
