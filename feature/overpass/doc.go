// Package overpass obtains and normalizes OpenStreetMap snapshots from the Overpass API.
//
// # Fetching
//
// Fetcher returns the last cached raw response when one exists and only queries
// Overpass on a miss. Cached responses never expire; `cache clear` resets them. Two
// cache backends exist: FileCache on the local disk and ObjectCache in an S3 bucket.
//
// # Normalizing
//
// Normalize turns the raw payload into reconcile elements. Nodes carry their own
// coordinates while ways and relations use the center computed by `out center;`.
// The first invalid element aborts the snapshot, so a partial snapshot is never
// reconciled.
package overpass
