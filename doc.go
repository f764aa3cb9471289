// Package beamgrid is your in-memory playground for tracing every branching
// path of a beam falling through a 2-D deflector grid — and counting how
// many genuinely distinct ways it can leave the bottom edge.
//
// 🚀 What is beamgrid?
//
//	A compact, deterministic simulation library that brings together:
//		• chargrid — immutable character grids: parsing, validation, start-marker lookup
//		• beamsim  — the generation-stepped path-enumeration engine with
//		  branch-on-deflector rules, copy-on-branch move signatures, and
//		  exact signature deduplication at the boundary
//
// ✨ Why choose beamgrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable grids, sentinel errors, in-code docs & hooks
//   - Extensible – add custom hooks (OnRetire, OnGeneration…) for custom logic
//   - Scales sideways – optional sharded expansion of each generation
//
// Under the hood, everything is organized under two subpackages and a CLI:
//
//	chargrid/     — rectangular byte grid: Parse, Cell, StartColumn
//	beamsim/      — Path, Frontier, SignatureSet & the Simulate loop
//	cmd/beamgrid/ — command-line front-end printing the distinct-exit count
//
// Quick ASCII example:
//
//	    .S.
//	    .^.
//
//	one beam enters at the S, hits the deflector below it, and splits
//	into a left and a right path — two distinct exits.
//
// Dive into examples/ for runnable walkthroughs, and each package's doc.go
// for contracts, complexity notes, and error taxonomies.
//
//	go get github.com/katalvlaran/beamgrid
package beamgrid
