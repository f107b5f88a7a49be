// Package shared models the parts every office document kind can carry:
// package metadata (core and extended properties), thumbnails, and embedded
// image media. These parts register themselves with the opc dispatch table,
// so any package opened through opc surfaces them as typed parts.
package shared
