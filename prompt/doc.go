// Package prompt renders ranked retrieval results into a context block
// suitable for downstream prompting of a language model.
package prompt
