package api

import "errors"

// ErrorActiveIterators operation cannot succeed because there are active
// iterators on the container instance.
var ErrorActiveIterators = errors.New("activeIterators")

// ErrorKeyMissing operation cannot succeed because specifed key is missing
// in the container instance.
var ErrorKeyMissing = errors.New("keyMissing")

// ErrorOutofMemory allocation cannot succeed because the allocator's
// capacity is exhausted. Fatal by default, but callers that configure a
// capacity can also treat this as a recoverable resource error.
var ErrorOutofMemory = errors.New("outofMemory")

// ErrorClosed operation cannot succeed because the iterator, or the
// container instance, is already dead.
var ErrorClosed = errors.New("closed")

// ErrorFreeUnderflow free call does not match an earlier allocation,
// accounting counters would go negative. Always a programmer error.
var ErrorFreeUnderflow = errors.New("freeUnderflow")
