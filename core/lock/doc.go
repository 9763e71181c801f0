// Package lock prevents overlapping sync runs across processes.
//
// RedisLocker takes a key with SET NX PX and a random token; release runs a Lua
// script that deletes the key only if the token still matches. NoopLocker is used
// when redis is not configured, which is safe for a single process because the
// scheduler never overlaps runs.
package lock
