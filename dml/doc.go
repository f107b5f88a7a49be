// Package dml models the DrawingML vocabulary shared by the other markup
// packages: the theme part with its color and font schemes, and the text
// body markup PresentationML embeds in its shapes.
package dml
