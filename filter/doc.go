// Package filter implements a probabilistic set filter on top of Golomb-Coded Sets.
//
// The construction follows the compact block filters of BIP-158: items are
// hashed, mapped uniformly into [0, N*M) and stored as a Golomb-Rice coded
// sorted set with remainder width P. With P close to log2(M) each item costs
// about P+1.5 bits and a query for an absent item matches with probability 1/M.
//
// Items are hashed with xxHash64 seeded by a per-filter key rather than with
// SipHash, so filters are not interchangeable with Bitcoin's; the payload format
// is the same, and FromPayload reads bare BIP-158 payloads for set queries.
//
//	f, err := filter.New(key, filter.DefaultP, filter.DefaultM, items)
//	if err != nil {
//		return err
//	}
//	if f.Match([]byte("scriptPubKey")) {
//		// maybe present, fetch the block
//	}
package filter
