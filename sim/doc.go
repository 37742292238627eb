// Package sim provides the core simulation engine for the virtual memory lab.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - replacement.go: the shared page-replacement loop and the frame set
//   - lru.go, optimal.go: the two eviction policies plugged into the loop
//   - fragmentation.go: the first-fit memory map and event timeline
//
// # Architecture
//
// The package exposes two pure entry points:
//   - Simulate replays a page reference string against a bounded frame set
//     under a chosen eviction policy and returns one StepRecord per
//     reference.
//   - GenerateTimeline replays random allocation/deallocation events over a
//     fixed-size memory map and returns one MemoryMap snapshot per event.
//
// Neither entry point keeps state between calls. All randomness in the
// fragmentation generator comes from an injected *rand.Rand; see rng.go for
// the deterministic per-subsystem derivation used by the CLI and server.
//
// Rendering, parsing of user input, and session retention live in cmd/ and
// server/, not here.
package sim
