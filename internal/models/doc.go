// Package models defines the core domain models for Wayfarer.
//
// # Models
//
//   - User: registered account (email + password login)
//   - Trip: a journey with an owner and a member list
//   - Place: a visited location logged within a trip
//   - Expense: a shared cost within a trip, with per-participant shares
//
// # Participants
//
// Trip members and expense participants are identified by opaque strings:
// either a registered user's ID or a guest's display name. Uniqueness is by
// exact string equality within one trip; no deduplication of near-matches is
// attempted.
//
// # Design Principles
//
//  1. Relationships use ID strings instead of pointers, avoiding circular
//     references.
//  2. Expense shares are computed once at create/update time and stored;
//     balances and settlements are never stored, only derived on request by
//     the settlement package.
//  3. Timestamps are Unix seconds.
package models
