// Package models defines the core domain records for Consorcio.
//
// # Records
//
//   - Participant: a person in the shared-expense group (a unit owner or tenant)
//   - Expense: a cost paid by one participant and split equally among a subset
//   - Payment: a direct transfer from a debtor to a creditor
//   - CurrentUser: the participant the API treats as the acting user
//   - Account: login credentials bound to a participant
//
// Snapshot bundles all of the above into the single document that the
// storage layer loads and saves as a whole.
//
// # Design Principles
//
//  1. Records are plain values; relationships are ID strings, never pointers
//  2. Collections keep insertion order, which is the order the API lists them in
//  3. Money is decimal.Decimal so equal splits do not accumulate float error
package models
