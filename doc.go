// Package funds maintains a normalized index-fund dataset for two markets,
// global and sweden.
//
// The pipeline is a single pass: query the Morningstar screener for every
// configured search phrase, normalize the hits into canonical fund records,
// fall back to the curated table when the live path comes up empty, sort
// each market by fee, and overwrite the JSON document consumed by the
// display layer. Each run is self-contained; the previous output is never
// read back.
package funds
