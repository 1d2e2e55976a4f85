// Package providers contains concrete modeladapter.Completer implementations.
// The only provider in this repository is keyword, a deterministic stand-in
// for a language model used by the assistant examples.
package providers
