// Package readme mines usage examples from package documentation text.
//
// # Pipeline
//
// The pipeline is a one-way flow over a markdown-like long description:
//
//	raw text → clean → extract candidates → classify → dedupe → rank
//
// [CleanContent] normalizes the text (HTML stripped, blank lines collapsed,
// line endings unified). [ExtractExamples] runs the full pipeline and
// returns ranked [UsageExample] values: fenced code blocks associated with
// their nearest section heading, plus inline code spans that read like
// executable fragments.
//
// # Classification
//
// A fenced block survives when it is Python (the default for undeclared
// fences), a bash install command, a configuration format, or sits under a
// usage-style heading — and is not too short, too long, or pure program
// output. The policy lives in ordered rule tables so each rule can be
// audited and tested on its own.
//
// # Failure policy
//
// Both entry points are total: they never return an error and never panic.
// Mining is a best-effort enhancement of package metadata, so an internal
// failure degrades to "no cleaning applied" or "no examples found" rather
// than aborting the caller's response.
//
// # Concurrency
//
// Everything here is a pure function over its input. A [Miner] holds only
// immutable configuration and may be shared freely across goroutines.
package readme
