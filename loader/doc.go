// Package loader provides include loaders for mj-include resolution.
//
// Every loader implements both [parser.IncludeLoader] and
// [parser.AsyncIncludeLoader], so the same value can drive a synchronous or
// a context-aware parse:
//
//	fragments := loader.NewMulti(loader.NewLocal(loader.SearchPath("templates")...)).
//		Route("shared/", loader.Memory{"shared/footer.mjml": footer})
//	out, err := mjml.ParseWithOptions(text, parser.Options{
//		IncludeLoader: loader.NewCached(fragments),
//	})
package loader
