package ooxml

import "github.com/tsawler/ooxml/opc"

// Option configures how a package is opened.
type Option func(*openConfig)

type openConfig struct {
	opcOpts []opc.Option
}

// LenientValues makes attribute coercion failures non-fatal: unknown
// enumeration tokens and unparseable measurements pass through instead of
// raising value errors. Structural errors stay fatal.
func LenientValues() Option {
	return func(c *openConfig) {
		c.opcOpts = append(c.opcOpts, opc.WithLenientValues())
	}
}

func opcOptions(opts []Option) []opc.Option {
	var c openConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c.opcOpts
}
