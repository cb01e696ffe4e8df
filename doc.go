// Package fmmseg is a forward-maximum-matching segmentation-and-
// substitution engine over OpenCC lexicons, converting Chinese text
// between Simplified, Traditional (general/Taiwan/Hong Kong), and
// Japanese Shinjitai scripts.
//
// # Basic usage
//
//	bundle, err := builder.BuildFromDir("lexicons/")
//	conv := fmmseg.New(bundle)
//	out := conv.Convert("汉字转换测试", "s2t", false)
//
// A Bundle holds the 16 fixed OpenCC lexicons and is expensive to build
// but cheap to share; an OpenCC converter is a thin, cheap-to-construct
// façade over a shared Bundle. Construction is single-threaded;
// conversion is safe to call concurrently from many goroutines sharing
// one *OpenCC, and from many *OpenCC instances sharing one *Bundle.
//
// Loading and persisting a Bundle lives in the internal/builder
// subpackage, which parses OpenCC's plain-text lexicon format and reads
// and writes the Zstd-compressed CBOR bundle blob.
package fmmseg
