// Package layout holds the index arithmetic of the tiered vector.
//
// Everything here is a pure function of the offset table: Locate and Walk turn
// a logical index into (tier, offset), Memo caches the last resolved tier,
// and the sizing helpers decide tier geometry and when to shrink.
package layout
