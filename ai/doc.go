// Package ai defines the answer-generation interface used to turn a
// formatted retrieval prompt into a final answer, together with its
// configuration. Concrete implementations live in subpackages.
package ai
