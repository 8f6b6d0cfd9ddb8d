// Package core contains the plumbing every wrapper family is built on:
// sequencing and branching over plain funcs, the call-once Cell, and the
// poisoning Guard used by Sync wrappers. It does not know about any
// behaviour category; function, consumer, mutator and the others express
// their operators through it.
package core
