// Package khata implements a shopkeeper's ledger (a "khata"): customer
// accounts with per-transaction product entries, cash payments, free-form
// notes and shop settings, persisted as three plain JSON documents.
//
// The Book is the single source of truth. All mutations go through its
// narrow operation surface, serialize behind one mutex, and recompute
// derived values (a customer's balance) synchronously before the next
// operation is accepted.
package khata
