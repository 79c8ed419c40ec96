// File: doc.go
// Title: Package Documentation for seqx
// Description: Package seqx provides lazy sequence shaping over iter.Seq.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation, replacing the eager slicex helpers

// Package seqx provides lazy paging, batching and flattening of sequences.
//
// Every function returns a new iter.Seq without pulling from its input;
// work happens only when the caller ranges over the result:
//
//	page, err := seqx.Page(seqx.FromSlice(items), 4, 5)
//	if err != nil {
//		return err
//	}
//	for item := range page {
//		fmt.Println(item)
//	}
//
// Page, Batch, ForEach, Flatten and WithIndex validate their arguments up
// front and return an error matching mdwerror.ErrInvalidArgument for a nil
// sequence, a nil action or a non-positive size. Page accepts page number 0
// and treats it like page 1.
//
// The primitives Skip, Take, Filter and Map treat a nil sequence as empty.
package seqx
