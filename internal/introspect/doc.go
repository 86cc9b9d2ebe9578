// Package introspect inspects emergent protocols after training: edit
// distances between messages, topographic similarity between the meaning
// and message spaces, and the lexicon of distinct messages in use.
package introspect
